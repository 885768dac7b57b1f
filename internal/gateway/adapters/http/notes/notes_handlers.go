// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"smartnotes/internal/gateway/adapters/http/apierrors"
	"smartnotes/internal/gateway/adapters/http/middleware"
	"smartnotes/internal/gateway/app/dto"
	"smartnotes/internal/notes/app"
	"smartnotes/internal/notes/domain/entities"
	"smartnotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote    = "handling create note request"
	LogHandlerGetNote       = "handling get note request"
	LogHandlerListNotes     = "handling list notes request"
	LogHandlerUpdateNote    = "handling update note request"
	LogHandlerDeleteNote    = "handling delete note request"
	LogHandlerSummarizeNote = "handling summarize note request"

	ErrMsgInvalidRequestBody = "invalid request body"

	MsgNoteDeleted = "note deleted"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// ListNotes обрабатывает запрос на список заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	notes, err := h.noteUseCase.ListNotes(userCtx, middleware.CallerID(ctx))
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.JSON(dto.NotesEnvelope{Notes: dto.NotesFromEntities(notes)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	note, err := h.noteUseCase.CreateNote(userCtx, middleware.CallerID(ctx), req.Title, req.Content, req.Summary)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteEnvelope{Note: dto.NoteFromEntity(note)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(userCtx, LogHandlerGetNote)

	note, err := h.noteUseCase.GetNote(userCtx, middleware.CallerID(ctx), ctx.Params("note_id"))
	if err != nil {
		log.Error(userCtx, "failed to get note", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.JSON(dto.NoteEnvelope{Note: dto.NoteFromEntity(note)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(userCtx, LogHandlerUpdateNote)

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrMsgInvalidRequestBody,
		}); err != nil {
			return fmt.Errorf("failed to send bad request response: %w", err)
		}
		return nil
	}

	upd := &entities.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
		Summary: req.Summary,
	}

	note, err := h.noteUseCase.UpdateNote(userCtx, middleware.CallerID(ctx), ctx.Params("note_id"), upd)
	if err != nil {
		log.Error(userCtx, "failed to update note", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.JSON(dto.NoteEnvelope{Note: dto.NoteFromEntity(note)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	if err := h.noteUseCase.DeleteNote(userCtx, middleware.CallerID(ctx), ctx.Params("note_id")); err != nil {
		log.Error(userCtx, "failed to delete note", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.JSON(dto.MessageResponse{Message: MsgNoteDeleted}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SummarizeNote обрабатывает запрос на суммаризацию заметки.
func (h *Handler) SummarizeNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.SummarizeNote"))
	log.Debug(userCtx, LogHandlerSummarizeNote)

	summary, err := h.noteUseCase.SummarizeNote(userCtx, middleware.CallerID(ctx), ctx.Params("note_id"))
	if err != nil {
		log.Error(userCtx, "failed to summarize note", zap.Error(err))
		return apierrors.Respond(ctx, userCtx, err)
	}

	if err := ctx.JSON(dto.SummaryResponse{Summary: summary}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
