package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "snap-backend", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, 24*time.Hour, cfg.Story.TTL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "60")
	t.Setenv("STORY_TTL_HOURS", "2")
	t.Setenv("MEDIA_REQUEST_TIMEOUT_MS", "500")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	require.Equal(t, 2*time.Hour, cfg.Story.TTL())
	require.Equal(t, 500*time.Millisecond, cfg.Media.RequestTimeout())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvAsInt_BadValueFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "twelve")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
}
