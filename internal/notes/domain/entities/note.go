// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// Минимальная длина содержимого, для которого доступна суммаризация.
const MinSummarizeContentLength = 100

// Ошибки домена заметок.
var (
	ErrInvalidNoteID   = errors.New("invalid note ID")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrNoUpdateFields  = errors.New("at least one field (title, content, or summary) is required")
	ErrContentTooShort = errors.New("note content is too short to summarize")
	ErrNoteNotFound    = errors.New("note not found")
	ErrNotNoteOwner    = errors.New("access to another user's note is forbidden")
)

// Note представляет собой заметку пользователя.
// Владелец назначается при создании и никогда не меняется.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new note with the given owner, title, content and summary.
func NewNote(userID, title, content, summary string) *Note {
	now := time.Now()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Summary:   summary,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NoteUpdate описывает частичное обновление заметки. Нулевой указатель
// означает, что поле в запросе не передавалось.
type NoteUpdate struct {
	Title   *string
	Content *string
	Summary *string
}
