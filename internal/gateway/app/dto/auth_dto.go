// Package dto contains data transfer objects for the HTTP API.
package dto

// SignupRequest представляет запрос на регистрацию пользователя.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse представляет ответ на успешную регистрацию.
type SignupResponse struct {
	UserID string `json:"userId"`
}

// LoginRequest представляет запрос на вход в систему.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse представляет публичный профиль пользователя.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse представляет ответ на успешный вход.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse представляет ответ на запрос профиля.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}
