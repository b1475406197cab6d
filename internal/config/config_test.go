package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("CONTACT_SUBMIT_TIMEOUT_SECONDS", "")
	t.Setenv("CONTACT_NOTIFICATION_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, time.Duration(0), cfg.Contact.SubmitTimeout())
	assert.Equal(t, 3*time.Second, cfg.Contact.NotificationDuration())
	assert.Equal(t, 10*time.Minute, cfg.Contact.RateLimitWindow())
	assert.Equal(t, []string{"*"}, cfg.App.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CONTACT_SUBMIT_TIMEOUT_SECONDS", "15")
	t.Setenv("CONTACT_NOTIFICATION_MS", "500")
	t.Setenv("ADMIN_TOKEN_TTL_MINUTES", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://portfolio.example.com, http://localhost:5173,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.Contact.SubmitTimeout())
	assert.Equal(t, 500*time.Millisecond, cfg.Contact.NotificationDuration())
	assert.Equal(t, 5*time.Minute, cfg.Admin.TokenTTL())
	assert.Equal(t, []string{"https://portfolio.example.com", "http://localhost:5173"}, cfg.App.CORSAllowedOrigins)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
