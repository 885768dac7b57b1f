// Package entities defines the domain entities for the auth service.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUsername = errors.New("name is required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrUserNotFound  = errors.New("user not found")
)

// User представляет основную сущность домена пользователя.
// Запись создается один раз при регистрации и далее не изменяется.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
