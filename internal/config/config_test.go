package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORTAL_DATABASE_DSN", "host=db user=portal dbname=portal sslmode=disable")
	t.Setenv("PORTAL_AUTH_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db user=portal dbname=portal sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)

	// defaults
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 1440, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORTAL_DATABASE_DSN", "host=db user=portal dbname=portal sslmode=disable")
	t.Setenv("PORTAL_AUTH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverridesNested(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORTAL_DATABASE_DSN", "host=db user=portal dbname=portal sslmode=disable")
	t.Setenv("PORTAL_AUTH_SECRET", "s")
	t.Setenv("PORTAL_AUTH_TOKEN_TTL_MINUTES", "60")
	t.Setenv("PORTAL_SERVER_ADDR", ":9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}
