package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_SLIDING", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SessionSliding)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_SLIDING", "true")
	t.Setenv("ADMIN_EMAIL", "root@x.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.SessionSliding)
	assert.Equal(t, "root@x.com", cfg.AdminEmail)
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SESSION_SLIDING", "maybe")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SessionSliding)
}
