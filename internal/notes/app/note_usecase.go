// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartnotes/internal/notes/domain/entities"
	"smartnotes/internal/notes/ports/repositories"
	"smartnotes/internal/notes/ports/services"
	"smartnotes/pkg/logger"
)

const (
	methodListNotes  = "ListNotes"
	methodCreateNote = "CreateNote"
	methodGetNote    = "GetNote"
	methodUpdateNote = "UpdateNote"
	methodDeleteNote = "DeleteNote"
	methodSummarize  = "SummarizeNote"

	msgGateRejected     = "ownership gate rejected request"
	msgNoteCreated      = "note created"
	msgNoteUpdated      = "note updated"
	msgNoteDeleted      = "note deleted"
	msgSummaryCached    = "returning cached summary"
	msgSummaryGenerated = "summary generated and persisted"
	msgContentTooShort  = "content below summarization threshold"

	errCtxLoadingNote      = "loading note"
	errCtxListingNotes     = "listing notes"
	errCtxCreatingNote     = "creating note"
	errCtxUpdatingNote     = "updating note"
	errCtxDeletingNote     = "deleting note"
	errCtxPersistSummary   = "persisting summary"
	errCtxCallingProvider  = "calling summarization provider"
	errCtxValidatingFields = "validating fields"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Каждая операция над конкретной заметкой проходит единый трехфазный
// контроль: синтаксическая проверка идентификаторов, проверка
// существования, проверка владения. Заметки никогда не кэшируются
// между запросами - каждый запрос перечитывает текущее состояние.
type NoteUseCase struct {
	noteRepo   repositories.NoteRepository
	summarizer services.Summarizer
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, summarizer services.Summarizer) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:   noteRepo,
		summarizer: summarizer,
	}
}

// ListNotes возвращает все заметки пользователя, новые первыми.
func (uc *NoteUseCase) ListNotes(ctx context.Context, callerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("userID", callerID))

	if uuid.Validate(callerID) != nil {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "invalid user id"))
		return nil, entities.ErrInvalidUserID
	}

	notes, err := uc.noteRepo.ListByUserID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// CreateNote создает новую заметку для пользователя. Сводка опциональна
// и по умолчанию пуста: при создании она никогда не генерируется.
func (uc *NoteUseCase) CreateNote(ctx context.Context, callerID, title, content, summary string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", callerID))

	if uuid.Validate(callerID) != nil {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "invalid user id"))
		return nil, entities.ErrInvalidUserID
	}
	if title == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFields, entities.ErrEmptyTitle)
	}
	if content == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFields, entities.ErrEmptyContent)
	}

	note, err := uc.noteRepo.Create(ctx, entities.NewNote(callerID, title, content, summary))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку после прохождения контроля владения.
func (uc *NoteUseCase) GetNote(ctx context.Context, callerID, noteID string) (*entities.Note, error) {
	return uc.ownershipGate(ctx, callerID, noteID)
}

// UpdateNote обновляет существующую заметку. Требуется хотя бы одно
// применимое поле: непустой title, непустой content либо переданный
// summary (пустая строка допустима и очищает сводку). Обновление
// title/content не сбрасывает ранее сгенерированную сводку.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, callerID, noteID string, upd *entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	hasTitle := upd.Title != nil && *upd.Title != ""
	hasContent := upd.Content != nil && *upd.Content != ""
	hasSummary := upd.Summary != nil
	if !hasTitle && !hasContent && !hasSummary {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFields, entities.ErrNoUpdateFields)
	}

	note, err := uc.ownershipGate(ctx, callerID, noteID)
	if err != nil {
		return nil, err
	}

	if hasTitle {
		note.Title = *upd.Title
	}
	if hasContent {
		note.Content = *upd.Content
	}
	if hasSummary {
		note.Summary = *upd.Summary
	}

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated)
	return updated, nil
}

// DeleteNote удаляет заметку без возможности восстановления.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, callerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	if _, err := uc.ownershipGate(ctx, callerID, noteID); err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

// SummarizeNote возвращает сводку заметки. Однажды сгенерированная сводка
// сохраняется на записи и переиспользуется: провайдер вызывается не более
// одного раза за жизнь заметки. При отказе провайдера запись остается
// нетронутой.
func (uc *NoteUseCase) SummarizeNote(ctx context.Context, callerID, noteID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSummarize), zap.String("noteID", noteID))

	note, err := uc.ownershipGate(ctx, callerID, noteID)
	if err != nil {
		return "", err
	}

	if len(note.Content) < entities.MinSummarizeContentLength {
		log.Debug(ctx, msgContentTooShort, zap.Int("content_length", len(note.Content)))
		return "", fmt.Errorf("%s: %w", errCtxValidatingFields, entities.ErrContentTooShort)
	}

	if note.Summary != "" {
		log.Debug(ctx, msgSummaryCached)
		return note.Summary, nil
	}

	summary, err := uc.summarizer.Summarize(ctx, note.Content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxCallingProvider, err)
	}

	note.Summary = summary
	if _, err := uc.noteRepo.Update(ctx, note); err != nil {
		return "", fmt.Errorf("%s: %w", errCtxPersistSummary, err)
	}

	log.Info(ctx, msgSummaryGenerated, zap.Int("summary_length", len(summary)))
	return summary, nil
}

// ownershipGate реализует общий трехфазный контроль доступа к заметке.
// Проверки выполняются строго по порядку с остановкой на первой ошибке:
// несуществование заметки сообщается раньше запрета доступа.
func (uc *NoteUseCase) ownershipGate(ctx context.Context, callerID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("noteID", noteID), zap.String("userID", callerID))

	if uuid.Validate(noteID) != nil {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "invalid note id"))
		return nil, entities.ErrInvalidNoteID
	}
	if uuid.Validate(callerID) != nil {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "invalid user id"))
		return nil, entities.ErrInvalidUserID
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingNote, err)
	}
	if note == nil {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "note not found"))
		return nil, entities.ErrNoteNotFound
	}

	if note.UserID != callerID {
		log.Debug(ctx, msgGateRejected, zap.String("reason", "not owner"))
		return nil, entities.ErrNotNoteOwner
	}

	return note, nil
}
