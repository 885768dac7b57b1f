package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"JWT_SECRET_KEY" env-default:"6kDqUzpkWwbzmv7yGxbQ4sIahMuvvNoe889pbEzZql0SU8n3U1gYi29gZnFQKxiU"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"JWT_ACCESS_TOKEN_TTL" env-default:"168h"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
// По умолчанию токен живет 7 дней.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 7 * 24 * time.Hour
	}
	return duration
}
