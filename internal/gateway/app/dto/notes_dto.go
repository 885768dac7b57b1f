package dto

import (
	"time"

	"smartnotes/internal/notes/domain/entities"
)

// NoteResponse представляет заметку в ответах API.
type NoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoteRequest представляет запрос на создание заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

// UpdateNoteRequest представляет запрос на обновление заметки.
// Указатели различают отсутствующее поле и пустую строку: пустой
// summary допустим и очищает сводку. Нулевые указатели не
// сериализуются, поэтому клиент передает только заданные поля.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// NoteEnvelope оборачивает одиночную заметку в ответе.
type NoteEnvelope struct {
	Note NoteResponse `json:"note"`
}

// NotesEnvelope оборачивает список заметок в ответе.
type NotesEnvelope struct {
	Notes []NoteResponse `json:"notes"`
}

// SummaryResponse представляет ответ операции суммаризации.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// MessageResponse представляет ответ с информационным сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет тело ответа при ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NoteFromEntity преобразует доменную заметку в DTO ответа.
func NoteFromEntity(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Summary:   note.Summary,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NotesFromEntities преобразует список доменных заметок в DTO ответа.
// Пустой список сериализуется как [], а не null.
func NotesFromEntities(notes []*entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteFromEntity(note))
	}
	return out
}
