package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5001", cfg.Addr())
	assert.Equal(t, "pdftoppm", cfg.OCR.Pdftoppm)
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
	assert.Equal(t, "eng", cfg.OCR.Lang)
	assert.Equal(t, 200, cfg.OCR.DPI)
	assert.Equal(t, 0, cfg.OCR.MaxPages)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxBytes)
	assert.NotEmpty(t, cfg.Session.Secret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("OCR_DPI", "300")
	t.Setenv("OCR_MAX_PAGES", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MAX_UPLOAD_MB", "8")
	t.Setenv("TMP_DIR", "/var/tmp/cables")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 5, cfg.OCR.MaxPages)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
	assert.Equal(t, int64(8<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "/var/tmp/cables", cfg.Storage.TmpDir)
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}
