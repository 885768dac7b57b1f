// Package services реализует прикладные сервисы шлюза.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smartnotes/internal/auth/ports/api"
	"smartnotes/internal/gateway/app/dto"
	"smartnotes/internal/gateway/ports/cache"
	"smartnotes/pkg/logger"
)

// Константы для логирования и ключей кэша.
const (
	ProfileCacheKeyPrefix = "profile:"
	profileCacheTTL       = 15 * time.Minute
	cacheWriteTimeout     = 5 * time.Second

	LogServiceGetProfile = "profile service: get profile"

	ErrorGetProfileFailed = "failed to get user profile"
)

// ProfileServiceImpl возвращает профили пользователей, кэшируя их в Redis.
// Профиль после регистрации неизменяем, поэтому закэшированное значение
// никогда не устаревает и инвалидация не требуется.
type ProfileServiceImpl struct {
	authUseCase api.AuthUseCase
	cache       cache.Cache
}

// NewProfileService создает новый экземпляр ProfileServiceImpl.
func NewProfileService(authUseCase api.AuthUseCase, cache cache.Cache) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		authUseCase: authUseCase,
		cache:       cache,
	}
}

// GetProfile получает профиль пользователя, сперва заглядывая в кэш.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogServiceGetProfile)

	cacheKey := ProfileCacheKeyPrefix + userID

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil && cached != "" {
			var profile dto.UserResponse
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				log.Debug(ctx, "user profile found in cache")
				return &profile, nil
			}
		}
	}

	user, err := s.authUseCase.Profile(ctx, userID)
	if err != nil {
		log.Error(ctx, ErrorGetProfileFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorGetProfileFailed, err)
	}

	profile := &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Username,
		Email: user.Email,
	}

	if s.cache != nil {
		if profileJSON, err := json.Marshal(profile); err == nil {
			cacheCtx, cancel := context.WithTimeout(ctx, cacheWriteTimeout)
			defer cancel()

			if err := s.cache.Set(cacheCtx, cacheKey, string(profileJSON), profileCacheTTL); err != nil {
				log.Warn(ctx, "failed to cache user profile", zap.Error(err))
			}
		}
	}

	return profile, nil
}
