package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnotes/internal/config"
	"smartnotes/internal/gateway/adapters/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	host, portStr, found := strings.Cut(server.Addr(), ":")
	require.True(t, found)

	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		PoolSize:       5,
		DefaultTTL:     15 * time.Minute,
	}

	return server, cfg
}

func TestNewRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("successful connection", func(t *testing.T) {
		_, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, redisCache)
		assert.NoError(t, redisCache.Close())
	})

	t.Run("connection failure", func(t *testing.T) {
		server, cfg := mockRedisServer(t)
		server.Close()

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.Error(t, err)
		assert.Nil(t, redisCache)
		assert.Contains(t, err.Error(), "failed to connect to redis")
	})
}

func TestRedisCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("existing key", func(t *testing.T) {
		server, cfg := mockRedisServer(t)
		require.NoError(t, server.Set("profile:abc", `{"id":"abc"}`))

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		value, err := redisCache.Get(ctx, "profile:abc")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"abc"}`, value)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		_, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		value, err := redisCache.Get(ctx, "profile:missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("server unavailable", func(t *testing.T) {
		server, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		server.Close()

		_, err = redisCache.Get(ctx, "profile:abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToGet)
	})
}

func TestRedisCacheSet(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit ttl", func(t *testing.T) {
		server, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		require.NoError(t, redisCache.Set(ctx, "profile:abc", "value", time.Minute))

		got, err := server.Get("profile:abc")
		require.NoError(t, err)
		assert.Equal(t, "value", got)
		assert.Equal(t, time.Minute, server.TTL("profile:abc"))
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		server, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		require.NoError(t, redisCache.Set(ctx, "profile:abc", "value", 0))
		assert.Equal(t, cfg.DefaultTTL, server.TTL("profile:abc"))
	})

	t.Run("server unavailable", func(t *testing.T) {
		server, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		server.Close()

		err = redisCache.Set(ctx, "profile:abc", "value", time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToSet)
	})
}

func TestRedisCacheDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes key", func(t *testing.T) {
		server, cfg := mockRedisServer(t)
		require.NoError(t, server.Set("profile:abc", "value"))

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		require.NoError(t, redisCache.Delete(ctx, "profile:abc"))
		assert.False(t, server.Exists("profile:abc"))
	})

	t.Run("deleting missing key is not an error", func(t *testing.T) {
		_, cfg := mockRedisServer(t)

		redisCache, err := cache.NewRedisCache(ctx, cfg)
		require.NoError(t, err)
		defer redisCache.Close()

		assert.NoError(t, redisCache.Delete(ctx, "profile:missing"))
	})
}
