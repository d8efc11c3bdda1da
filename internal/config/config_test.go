package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("HTTP_READ_TIMEOUT", "10s")
	t.Setenv("HTTP_WRITE_TIMEOUT", "10s")
	t.Setenv("HTTP_IDLE_TIMEOUT", "60s")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout.Duration())
	assert.False(t, cfg.App.IsProd())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("HTTP_READ_TIMEOUT", "5")
	t.Setenv("HTTP_WRITE_TIMEOUT", "'7s'")
	t.Setenv("HTTP_IDLE_TIMEOUT", "2m")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.True(t, cfg.App.IsProd())
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 7*time.Second, cfg.HTTP.WriteTimeout.Duration())
	assert.Equal(t, 2*time.Minute, cfg.HTTP.IdleTimeout.Duration())
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout.Duration())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
