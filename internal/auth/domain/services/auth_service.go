// Package services содержит доменные типы и ошибки сервиса аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	// ErrInvalidCredentials возвращается и для неизвестного email, и для
	// неверного пароля, чтобы не раскрывать существование учетной записи.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Session представляет результат успешной аутентификации.
type Session struct {
	UserID      string
	Username    string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}
