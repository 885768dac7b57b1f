// Package services определяет интерфейсы сервисов шлюза.
package services

import (
	"context"

	"smartnotes/internal/gateway/app/dto"
)

// ProfileService определяет интерфейс получения профиля пользователя.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
}
