package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	require.Empty(t, cfg.RedisAddr)
	require.False(t, cfg.DBInitSchema)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/registro_clientes")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("DB_INIT_SCHEMA", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "postgres://u:p@db:5432/registro_clientes", cfg.DatabaseURL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	require.True(t, cfg.DBInitSchema)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
