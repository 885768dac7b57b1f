// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"smartnotes/internal/auth/domain/services"
	ports "smartnotes/internal/auth/ports/services"
	"smartnotes/internal/gateway/adapters/http/apierrors"
	"smartnotes/pkg/logger"
)

// Ключи значений запроса, устанавливаемых промежуточным ПО.
const (
	UserIDKey      = "userID"
	UserContextKey = "userContext"

	bearerPrefix = "Bearer "

	LogAuthMiddleware = "auth middleware"
)

// NewAuthMiddleware создает промежуточное ПО проверки аутентификации.
// Проверяет заголовок Authorization, валидирует токен и помещает
// идентификатор пользователя в контекст запроса.
func NewAuthMiddleware(tokenService ports.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, services.ErrMissingToken.Error())
			return apierrors.Respond(ctx, requestCtx, services.ErrMissingToken)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, "token validation failed", zap.Error(err))
			return apierrors.Respond(ctx, requestCtx, err)
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса с идентификатором запроса,
// установленный промежуточным ПО логирования.
func RequestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context() // Запасной вариант
}

// CallerID возвращает идентификатор аутентифицированного пользователя.
func CallerID(ctx fiber.Ctx) string {
	userID, _ := ctx.Locals(UserIDKey).(string)
	return userID
}
