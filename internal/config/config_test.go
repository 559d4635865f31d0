package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "42", cfg.AdminID)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, "./public/uploads", cfg.UploadDir)
	assert.Equal(t, int64(3000000), cfg.MaxUploadBytes)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoad_RequiresAdminID(t *testing.T) {
	t.Setenv("ADMIN_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_ID")
}

func TestLoad_SMTPNeedsFrom(t *testing.T) {
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAIL_FROM")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADMIN_ID", "7")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("RESET_TOKEN_TTL", "30m")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("RESET_TOKEN_TTL", "not-a-duration")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, int64(3000000), cfg.MaxUploadBytes)
}
