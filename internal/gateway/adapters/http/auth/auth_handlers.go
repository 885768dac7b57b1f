// Package auth содержит HTTP обработчики для аутентификации.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"smartnotes/internal/auth/ports/api"
	"smartnotes/internal/gateway/adapters/http/apierrors"
	"smartnotes/internal/gateway/adapters/http/middleware"
	"smartnotes/internal/gateway/app/dto"
	"smartnotes/internal/gateway/ports/services"
	"smartnotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup  = "auth handler: signup"
	LogHandlerLogin   = "auth handler: login"
	LogHandlerProfile = "auth handler: profile"

	ErrorInvalidRequest       = "invalid request body"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для аутентификации.
type Handler struct {
	authUseCase    api.AuthUseCase
	profileService services.ProfileService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, profileService services.ProfileService) *Handler {
	return &Handler{
		authUseCase:    authUseCase,
		profileService: profileService,
	}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return fmt.Errorf("binding JSON: %w", ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}))
	}

	userID, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return apierrors.Respond(ctx, requestCtx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.SignupResponse{UserID: userID}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return fmt.Errorf("binding JSON: %w", ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}))
	}

	session, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return apierrors.Respond(ctx, requestCtx, err)
	}

	response := dto.LoginResponse{
		Token: session.AccessToken,
		User: dto.UserResponse{
			ID:    session.UserID,
			Name:  session.Username,
			Email: session.Email,
		},
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Profile обрабатывает запрос на получение профиля текущего пользователя.
func (h *Handler) Profile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerProfile)

	profile, err := h.profileService.GetProfile(requestCtx, middleware.CallerID(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return apierrors.Respond(ctx, requestCtx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ProfileResponse{User: *profile}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
