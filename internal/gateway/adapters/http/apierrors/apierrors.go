// Package apierrors maps domain errors to HTTP responses.
package apierrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authentities "smartnotes/internal/auth/domain/entities"
	authservices "smartnotes/internal/auth/domain/services"
	"smartnotes/internal/notes/domain/entities"
	notesservices "smartnotes/internal/notes/domain/services"
	"smartnotes/pkg/logger"
)

const (
	msgInternalError = "internal server error"

	errCtxSendingResponse = "sending error response"
)

// statusOf возвращает HTTP-статус и безопасное для клиента сообщение
// для известных доменных ошибок. Для неизвестных ошибок возвращает 500
// с нейтральным сообщением: детали остаются в логах.
func statusOf(err error) (int, string, bool) {
	switch {
	case errors.Is(err, authentities.ErrEmptyUsername),
		errors.Is(err, authentities.ErrEmptyEmail),
		errors.Is(err, authentities.ErrInvalidEmail),
		errors.Is(err, authentities.ErrEmptyPassword),
		errors.Is(err, entities.ErrInvalidNoteID),
		errors.Is(err, entities.ErrInvalidUserID),
		errors.Is(err, entities.ErrEmptyTitle),
		errors.Is(err, entities.ErrEmptyContent),
		errors.Is(err, entities.ErrNoUpdateFields),
		errors.Is(err, entities.ErrContentTooShort):
		return fiber.StatusBadRequest, unwrapMessage(err), true

	case errors.Is(err, authservices.ErrInvalidCredentials),
		errors.Is(err, authservices.ErrMissingToken),
		errors.Is(err, authservices.ErrInvalidJWTToken),
		errors.Is(err, authservices.ErrExpiredJWTToken):
		return fiber.StatusUnauthorized, unwrapMessage(err), true

	case errors.Is(err, entities.ErrNotNoteOwner):
		return fiber.StatusForbidden, unwrapMessage(err), true

	case errors.Is(err, entities.ErrNoteNotFound),
		errors.Is(err, authentities.ErrUserNotFound):
		return fiber.StatusNotFound, unwrapMessage(err), true

	case errors.Is(err, authservices.ErrEmailAlreadyExists):
		return fiber.StatusConflict, unwrapMessage(err), true

	case errors.Is(err, notesservices.ErrSummarizationFailed):
		// Детали отказа провайдера возвращаются клиенту целиком.
		return fiber.StatusInternalServerError, err.Error(), true
	}

	return fiber.StatusInternalServerError, msgInternalError, false
}

// unwrapMessage извлекает сообщение самой глубокой ошибки цепочки,
// отбрасывая технические префиксы контекста.
func unwrapMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

// Respond отправляет клиенту ответ об ошибке с подходящим статусом.
// Непредвиденные ошибки логируются с полной цепочкой.
func Respond(ctx fiber.Ctx, userCtx context.Context, err error) error {
	status, message, known := statusOf(err)
	if !known {
		logger.Log(userCtx).Error(userCtx, "unhandled error", zap.Error(err))
	}

	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("%s: %w", errCtxSendingResponse, err)
	}
	return nil
}
