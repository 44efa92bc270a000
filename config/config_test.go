package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("ADMIN_KEY", "adm1n")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Database.UseSSL)
	assert.Equal(t, CORSModeWildcard, cfg.CORSMode)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.Equal(t, "adm1n", cfg.AdminKey)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_KEY", "adm1n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRequiresAdminKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("ADMIN_KEY", "   ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_KEY")
}

func TestLoadAllowlistNeedsOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_MODE", CORSModeAllowlist)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALLOWED_ORIGINS")
}

func TestLoadAllowlist(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_MODE", CORSModeAllowlist)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsUnknownCORSMode(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_MODE", "both")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_MODE")
}

func TestLoadDatabaseSSL(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_SSL", "true")
	t.Setenv("DB_HOST", "db.abc123.supabase.co")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Database.UseSSL)
	assert.Equal(t, "db.abc123.supabase.co", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
}
