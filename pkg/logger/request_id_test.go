package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnotes/pkg/logger"
)

func TestNewRequestIDContext(t *testing.T) {
	t.Run("provided id is kept", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty id gets generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NoError(t, uuid.Validate(id))
	})
}

func TestGetRequestID(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
		assert.Empty(t, id)
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := logger.GenerateRequestID()
	second := logger.GenerateRequestID()

	assert.NoError(t, uuid.Validate(first))
	assert.NotEqual(t, first, second)
}
