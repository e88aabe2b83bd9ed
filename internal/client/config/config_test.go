package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "gemini-2.5-flash", c.TextModel)
	assert.Equal(t, "gemini-2.5-flash-preview-tts", c.SpeechModel)
	assert.Equal(t, "Kore", c.Voice)
	assert.Equal(t, 60*time.Second, c.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, c.DebounceInterval)
	assert.Equal(t, 50, c.HistoryLimit)
	assert.Equal(t, StoreSQLite, c.StoreDriver)
	assert.Equal(t, ArchiveNone, c.ArchiveKind)
}

func TestSQLitePath(t *testing.T) {
	c := Config{DataDir: "/tmp/tf"}
	assert.Equal(t, filepath.Join("/tmp/tf", "toneflow.db"), c.SQLitePath())

	c.StorePath = "/x/y.db"
	assert.Equal(t, "/x/y.db", c.SQLitePath())
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	c.StoreDriver = StorePostgres
	assert.ErrorContains(t, c.Validate(), "DSN")

	c.DatabaseDSN = "postgres://localhost/db"
	require.NoError(t, c.Validate())

	c.StoreDriver = "mongo"
	c.ArchiveKind = "tape"
	c.HistoryLimit = 0
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "mongo")
	assert.ErrorContains(t, err, "tape")
	assert.ErrorContains(t, err, "history limit")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	t.Setenv("TONEFLOW_CONFIG", "")
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "gemini-2.5-flash", cfg.TextModel)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeJSON(t, dir, `{"voice":"Puck","text_model":"json-model","store_driver":"memory"}`)

	t.Setenv("TONEFLOW_CONFIG", "")
	t.Setenv("TONEFLOW_STORE", "sqlite")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := LoadConfig([]string{"-c", path, "-voice", "Charon"})
	require.NoError(t, err)

	assert.Equal(t, "Charon", cfg.Voice, "flag beats json")
	assert.Equal(t, "json-model", cfg.TextModel, "json beats defaults")
	assert.Equal(t, StoreSQLite, cfg.StoreDriver, "env beats json")
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	t.Setenv("TONEFLOW_CONFIG", "")
	_, err := LoadConfig([]string{"-timeout", "abc"})
	require.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("TONEFLOW_CONFIG", "")
	_, err := LoadConfig([]string{"-store", "postgres"})
	require.Error(t, err)
}
