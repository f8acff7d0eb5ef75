package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.GroqAPIURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentVariables_MissingKeyIsNotAnError(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err, "missing credential must only fail at call time")
	assert.Empty(t, cfg.GroqAPIKey)
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_API_URL", "http://127.0.0.1:9999/v1/chat/completions")
	t.Setenv("PORT", "9001")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, "http://127.0.0.1:9999/v1/chat/completions", cfg.GroqAPIURL)
	assert.Equal(t, "9001", cfg.Port)
	assert.True(t, cfg.IsProduction())
}
