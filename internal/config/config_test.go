package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origPort := os.Getenv("PORT")
	defer os.Setenv("PORT", origPort)

	os.Setenv("PORT", "9191")
	os.Setenv("MAX_UPLOAD_BYTES", "1024")
	os.Setenv("PDF_ENGINE", "ledongthuc")
	defer os.Unsetenv("MAX_UPLOAD_BYTES")
	defer os.Unsetenv("PDF_ENGINE")

	cfg := Load()

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, 1024, cfg.MaxUploadBytes)
	assert.Equal(t, "ledongthuc", cfg.PDFEngine)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("MAX_UPLOAD_BYTES")
	os.Unsetenv("PDF_ENGINE")

	cfg := Load()

	assert.Equal(t, 25*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, "pdfcpu", cfg.PDFEngine)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
