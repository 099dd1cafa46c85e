package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GENERATE_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, 90*time.Second, cfg.GenerateTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("GENERATE_TIMEOUT", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Minute, cfg.GenerateTimeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("GENERATE_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
