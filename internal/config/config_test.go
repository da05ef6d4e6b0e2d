package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE", "letmein")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, "letmein", cfg.AdminAccessCode)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoad_RequiresAccessCode(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE", "")
	t.Setenv("ADMIN_ACCESS_CODE_HASH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AcceptsHashOnly(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE", "")
	t.Setenv("ADMIN_ACCESS_CODE_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminAccessCode)
	assert.NotEmpty(t, cfg.AdminAccessCodeHash)
}

func TestLoad_BadSessionTTL(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE", "letmein")
	t.Setenv("ADMIN_SESSION_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SupabaseCredentialsPassedThrough(t *testing.T) {
	t.Setenv("ADMIN_ACCESS_CODE", "letmein")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon-key", cfg.SupabaseKey)
}
