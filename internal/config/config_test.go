package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listedit/internal/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `log:
  level: debug
clipboard:
  mirror: false
document:
  items: [one, two]
contexts:
  - id: main
    title: Main
ui:
  row_height: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.Dir, "unset keys keep their default")
	assert.False(t, cfg.Clipboard.Mirror)
	assert.Equal(t, []string{"one", "two"}, cfg.Document.Items)
	assert.Equal(t, []ContextConfig{{ID: "main", Title: "Main"}}, cfg.Contexts)
	assert.Equal(t, 2, cfg.UI.RowHeight)
	assert.Equal(t, logger.LevelDebug, cfg.LogOptions().Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("LISTEDIT_LOG_LEVEL", "error")
	t.Setenv("LISTEDIT_UI_ROW_HEIGHT", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 3, cfg.UI.RowHeight)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, `contexts:
  - id: a
  - id: a
`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"no contexts", func(c *Config) { c.Contexts = nil }},
		{"empty id", func(c *Config) { c.Contexts[0].ID = " " }},
		{"duplicate id", func(c *Config) { c.Contexts[1].ID = c.Contexts[0].ID }},
		{"padded id", func(c *Config) { c.Contexts[1].ID = c.Contexts[1].ID + " " }},
		{"zero row height", func(c *Config) { c.UI.RowHeight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "row_height: 1")
	require.Contains(t, string(data), "id: left")

	// Loads back through viper
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	var loaded Config
	require.NoError(t, v.Unmarshal(&loaded))
	assert.Equal(t, Defaults(), loaded)

	require.Error(t, WriteDefault(path), "must not overwrite")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "listedit configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"log", "clipboard", "document", "contexts", "ui"} {
		assert.Contains(t, props, key)
	}
}
