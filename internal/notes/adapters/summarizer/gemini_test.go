package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnotes/internal/config"
	"smartnotes/internal/notes/adapters/summarizer"
	domainservices "smartnotes/internal/notes/domain/services"
)

func geminiConfig(baseURL string) *config.SummarizerConfig {
	return &config.SummarizerConfig{
		APIKey:         "test-api-key",
		Model:          "gemini-2.5-flash",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}
}

func TestGeminiSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("successful summarization", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"parts": []map[string]any{{"text": "a concise summary"}}}},
				},
			})
		}))
		defer server.Close()

		gemini := summarizer.NewGemini(geminiConfig(server.URL))

		summary, err := gemini.Summarize(ctx, "note content to summarize")
		require.NoError(t, err)
		assert.Equal(t, "a concise summary", summary)

		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
		assert.Equal(t, "test-api-key", gotKey)

		// Запрос несет инструкцию и исходный текст.
		encoded, err := json.Marshal(gotBody)
		require.NoError(t, err)
		assert.Contains(t, string(encoded), "Summarize the following note")
		assert.Contains(t, string(encoded), "note content to summarize")
	})

	t.Run("upstream error surfaces as provider failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		gemini := summarizer.NewGemini(geminiConfig(server.URL))

		summary, err := gemini.Summarize(ctx, "note content")
		require.Error(t, err)
		assert.Empty(t, summary)
		assert.ErrorIs(t, err, domainservices.ErrSummarizationFailed)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty candidates treated as failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
		}))
		defer server.Close()

		gemini := summarizer.NewGemini(geminiConfig(server.URL))

		_, err := gemini.Summarize(ctx, "note content")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrSummarizationFailed)
		assert.Contains(t, err.Error(), "no candidates")
	})

	t.Run("transport failure does not expose the api key", func(t *testing.T) {
		// Ошибки транспорта включают URL запроса в текст и доходят
		// до клиента вместе с деталями отказа провайдера.
		cfg := geminiConfig("http://127.0.0.1:1")
		cfg.APIKey = "super-secret-key"

		gemini := summarizer.NewGemini(cfg)

		_, err := gemini.Summarize(ctx, "note content")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrSummarizationFailed)
		assert.NotContains(t, err.Error(), cfg.APIKey)
	})

	t.Run("transient failures retried until success", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts < 3 {
				http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"parts": []map[string]any{{"text": "recovered"}}}},
				},
			})
		}))
		defer server.Close()

		gemini := summarizer.NewGemini(geminiConfig(server.URL))

		summary, err := gemini.Summarize(ctx, strings.Repeat("a", 150))
		require.NoError(t, err)
		assert.Equal(t, "recovered", summary)
		assert.Equal(t, 3, attempts)
	})
}
