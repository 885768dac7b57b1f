package config

import "time"

// SummarizerConfig содержит настройки провайдера суммаризации.
// Пустой API ключ означает использование локального детерминированного
// fallback вместо удаленного вызова.
type SummarizerConfig struct {
	APIKey         string        `yaml:"api_key" env:"GEMINI_API_KEY" env-default:""`
	Model          string        `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
	BaseURL        string        `yaml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"GEMINI_REQUEST_TIMEOUT" env-default:"30s"`
}

// HasAPIKey сообщает, настроен ли удаленный провайдер.
func (c *SummarizerConfig) HasAPIKey() bool {
	return c.APIKey != ""
}
