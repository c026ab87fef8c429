package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "AMD", cfg.App.BaseCurrency)
	assert.Equal(t, "USD", cfg.App.DefaultTarget)
	assert.Equal(t, 30*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.True(t, cfg.App.EnableSwagger)
	assert.Empty(t, cfg.External.BaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("BASE_CURRENCY", "usd")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("RATES_REFRESH_INTERVAL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ENABLE_SWAGGER", "false")
	t.Setenv("MAX_SESSIONS", "42")

	cfg := FromEnv()

	assert.Equal(t, "localhost:9090", cfg.Server.Addr())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "USD", cfg.App.BaseCurrency)
	assert.Equal(t, 5*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.Worker.RefreshInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.False(t, cfg.App.EnableSwagger)
	assert.Equal(t, 42, cfg.App.MaxSessions)
}
