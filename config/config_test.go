package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("EVENT_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "9090", cfg.MetricsPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.EventCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTHORITY_ID", " 42 ")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("STORAGE_BACKEND", "MEMORY")
	t.Setenv("EVENT_CACHE_TTL", "30s")
	t.Setenv("NATS_SERVERS", "nats://localhost:4222")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.AuthorityID)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, 30*time.Second, cfg.EventCacheTTL)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSServers)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Validation(t *testing.T) {
	t.Run("authority required", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "development")
		t.Setenv("AUTHORITY_ID", "")
		t.Setenv("DISCORD_TOKEN", "token")
		t.Setenv("DATABASE_URL", "postgres://localhost")

		_, err := Load()
		assert.ErrorContains(t, err, "AUTHORITY_ID")
	})

	t.Run("database url required for postgres", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "development")
		t.Setenv("AUTHORITY_ID", "42")
		t.Setenv("DISCORD_TOKEN", "token")
		t.Setenv("STORAGE_BACKEND", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "test")
		t.Setenv("STORAGE_BACKEND", "sqlite")

		_, err := Load()
		assert.ErrorContains(t, err, "STORAGE_BACKEND")
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "test")
		t.Setenv("EVENT_CACHE_TTL", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "EVENT_CACHE_TTL")
	})
}

func TestSetTestConfig(t *testing.T) {
	defer ResetConfig()

	cfg := NewTestConfig()
	cfg.AuthorityID = "authority"
	SetTestConfig(cfg)

	assert.Same(t, cfg, Get())
	assert.Equal(t, "authority", Get().AuthorityID)
}
