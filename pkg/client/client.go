// Package client предоставляет программный клиент HTTP API сервиса заметок
// и локальный контейнер состояния для отображения заметок.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"smartnotes/internal/gateway/app/dto"
)

// Константы клиента.
const (
	defaultTimeout = 30 * time.Second

	errCtxBuildingRequest = "building request"
	errCtxSendingRequest  = "sending request"
	errCtxDecodingBody    = "decoding response body"
)

// APIError представляет ошибку, возвращенную сервером.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ErrNoToken возвращается при вызове защищенного метода без предварительного входа.
var ErrNoToken = errors.New("not authenticated: login first")

// Client является клиентом HTTP API сервиса заметок. После успешного
// Login токен сохраняется и передается во всех последующих запросах.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New создает новый экземпляр клиента.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken устанавливает токен доступа вручную.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token возвращает текущий токен доступа.
func (c *Client) Token() string {
	return c.token
}

// Signup регистрирует нового пользователя и возвращает его идентификатор.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	var resp dto.SignupResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login аутентифицирует пользователя и сохраняет полученный токен.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Profile возвращает профиль текущего пользователя.
func (c *Client) Profile(ctx context.Context) (*dto.UserResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var resp dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ListNotes возвращает все заметки текущего пользователя.
func (c *Client) ListNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var resp dto.NotesEnvelope
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

// CreateNote создает новую заметку.
func (c *Client) CreateNote(ctx context.Context, title, content, summary string) (*dto.NoteResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var resp dto.NoteEnvelope
	err := c.do(ctx, http.MethodPost, "/notes", dto.CreateNoteRequest{
		Title:   title,
		Content: content,
		Summary: summary,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// GetNote возвращает заметку по идентификатору.
func (c *Client) GetNote(ctx context.Context, noteID string) (*dto.NoteResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var resp dto.NoteEnvelope
	if err := c.do(ctx, http.MethodGet, "/notes/"+noteID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// UpdateNote обновляет заметку. Поля-указатели со значением nil не передаются.
func (c *Client) UpdateNote(ctx context.Context, noteID string, upd dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var resp dto.NoteEnvelope
	if err := c.do(ctx, http.MethodPut, "/notes/"+noteID, upd, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// DeleteNote удаляет заметку.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	if c.token == "" {
		return ErrNoToken
	}
	var resp dto.MessageResponse
	return c.do(ctx, http.MethodDelete, "/notes/"+noteID, nil, &resp)
}

// SummarizeNote запрашивает сводку заметки.
func (c *Client) SummarizeNote(ctx context.Context, noteID string) (string, error) {
	if c.token == "" {
		return "", ErrNoToken
	}
	var resp dto.SummaryResponse
	if err := c.do(ctx, http.MethodPost, "/notes/"+noteID+"/summarize", nil, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// do выполняет запрос и декодирует ответ. Не-2xx статусы превращаются в APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxBuildingRequest, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxBuildingRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxSendingRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", errCtxDecodingBody, err)
	}
	return nil
}
