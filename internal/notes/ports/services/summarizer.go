// Package services defines service interfaces for the notes service.
package services

import "context"

// Summarizer определяет контракт провайдера суммаризации текста.
// Удаленный провайдер и локальный fallback взаимозаменяемы за этим интерфейсом.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
