// Package services содержит доменные типы и ошибки сервиса заметок.
package services

import "errors"

// Ошибки провайдера суммаризации.
var (
	// ErrSummarizationFailed возвращается при любом отказе удаленного
	// провайдера: сеть, квота, некорректный ответ.
	ErrSummarizationFailed = errors.New("summarization provider failed")
)
