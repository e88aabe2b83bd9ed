package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_DotenvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("TONEFLOW_LOG_LEVEL=debug\nTONEFLOW_DSN=postgres://from-file\n"), 0o600))

	t.Setenv("TONEFLOW_LOG_LEVEL", "error")
	t.Setenv("TONEFLOW_DSN", "")
	t.Cleanup(func() { os.Unsetenv("TONEFLOW_DSN") })
	os.Unsetenv("TONEFLOW_DSN")

	var cfg Config
	parseEnv(&cfg, dotenv)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "postgres://from-file", cfg.DatabaseDSN)
}

func TestParseEnv_GeminiKeyWinsOverLegacyName(t *testing.T) {
	t.Setenv("API_KEY", "legacy")
	t.Setenv("GEMINI_API_KEY", "primary")

	var cfg Config
	parseEnv(&cfg, "")
	assert.Equal(t, "primary", cfg.APIKey)
}

func TestParseEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Config{APIKey: "keep"}
	parseEnv(&cfg, "")
	assert.Equal(t, "keep", cfg.APIKey)
}
