package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"smartnotes/internal/config"
	"smartnotes/internal/gateway/resilience"
	domainservices "smartnotes/internal/notes/domain/services"
	"smartnotes/internal/notes/ports/services"
	"smartnotes/pkg/logger"
)

// Константы для работы с Gemini API.
const (
	methodSummarize      = "Summarize"
	msgCallingProvider   = "calling summarization provider"
	msgProviderResponded = "summarization provider responded"

	errMsgBuildRequest    = "failed to build provider request"
	errMsgCallProvider    = "failed to call provider"
	errMsgDecodeResponse  = "failed to decode provider response"
	errMsgEmptyCandidates = "provider returned no candidates"
)

// Шаблон запроса к модели: сводка в 3-4 предложения без лишних деталей.
const promptTemplate = "Summarize the following note in 3-4 concise sentences.\nAvoid unnecessary details.\n%s"

// Ограничение на размер тела ответа об ошибке в сообщении.
const maxErrorBodyBytes = 512

// geminiRequest описывает тело запроса generateContent.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse описывает интересующую часть ответа generateContent.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Gemini реализует интерфейс Summarizer через REST API Google Generative Language.
// Повторные попытки и Circuit Breaker - ответственность этого адаптера;
// для бизнес-логики любой его отказ окончателен в рамках запроса.
type Gemini struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	resilience *resilience.ServiceResilience
}

// NewGemini создает удаленный суммаризатор с настройками из конфигурации.
func NewGemini(cfg *config.SummarizerConfig) services.Summarizer {
	return &Gemini{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		resilience: resilience.NewServiceResilience("gemini"),
	}
}

// Summarize запрашивает сводку текста у модели.
func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSummarize), zap.String("model", g.model))
	log.Debug(ctx, msgCallingProvider, zap.Int("content_length", len(text)))

	summary, err := g.resilience.ExecuteWithResultString(ctx, methodSummarize, func() (string, error) {
		return g.generateContent(ctx, text)
	})
	if err != nil {
		log.Error(ctx, errMsgCallProvider, zap.Error(err))
		return "", fmt.Errorf("%w: %w", domainservices.ErrSummarizationFailed, err)
	}

	log.Debug(ctx, msgProviderResponded, zap.Int("summary_length", len(summary)))
	return summary, nil
}

// generateContent выполняет один вызов generateContent.
func (g *Gemini) generateContent(ctx context.Context, text string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fmt.Sprintf(promptTemplate, text)}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgBuildRequest, err)
	}

	// Ключ передается заголовком, а не в query: транспортные ошибки
	// включают URL запроса в текст, и он попадает в ответы и логи.
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgBuildRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgCallProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", fmt.Errorf("%s: unexpected status %d: %s", errMsgCallProvider, resp.StatusCode, string(detail))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%s: %w", errMsgDecodeResponse, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New(errMsgEmptyCandidates)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
