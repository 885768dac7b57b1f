// Package summarizer provides implementations of the text summarization provider.
package summarizer

import (
	"context"
	"strings"

	"smartnotes/internal/notes/ports/services"
)

// Количество токенов, сохраняемых локальным fallback.
const fallbackTokenLimit = 40

// Маркер усечения, добавляемый к локальной "сводке".
const ellipsisMarker = "..."

// Fallback реализует детерминированную локальную суммаризацию: первые
// 40 разделенных пробелами токенов с маркером усечения. Используется,
// когда удаленный провайдер не сконфигурирован, и никогда не завершается ошибкой.
type Fallback struct{}

// NewFallback создает локальный суммаризатор.
func NewFallback() services.Summarizer {
	return &Fallback{}
}

// Summarize возвращает усеченную версию текста.
func (f *Fallback) Summarize(_ context.Context, text string) (string, error) {
	tokens := strings.Fields(text)
	if len(tokens) > fallbackTokenLimit {
		tokens = tokens[:fallbackTokenLimit]
	}
	return strings.Join(tokens, " ") + ellipsisMarker, nil
}
