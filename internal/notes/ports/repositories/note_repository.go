// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"smartnotes/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// GetByID возвращает (nil, nil), если заметка не существует: различение
// "не найдено" и "чужая заметка" выполняется уровнем бизнес-логики.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) error
}
