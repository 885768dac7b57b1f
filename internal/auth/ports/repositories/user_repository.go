// Package repositories defines repository interfaces for the auth service.
package repositories

import (
	"context"

	"smartnotes/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс хранилища учетных данных.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
