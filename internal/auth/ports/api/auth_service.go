// Package api определяет внешние интерфейсы сервиса аутентификации.
package api

import (
	"context"

	"smartnotes/internal/auth/domain/entities"
	"smartnotes/internal/auth/domain/services"
)

// AuthUseCase определяет операции сервиса идентификации.
type AuthUseCase interface {
	// Register создает нового пользователя и возвращает его ID.
	Register(ctx context.Context, name, email, password string) (string, error)

	// Login аутентифицирует пользователя и выпускает access токен.
	Login(ctx context.Context, email, password string) (*services.Session, error)

	// Profile возвращает профиль пользователя по его ID.
	Profile(ctx context.Context, userID string) (*entities.User, error)
}
