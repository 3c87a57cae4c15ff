package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 30, cfg.LLM.RateLimit)
	assert.Equal(t, "redis", cfg.Session.Storage)
	assert.Equal(t, "pdflatex", cfg.Export.PDFLatexPath)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
llm:
  model: "claude-3-5-sonnet-latest"
  rate_limit: 10
session:
  storage: "memory"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "claude-3-5-sonnet-latest", cfg.LLM.Model)
	assert.Equal(t, 10, cfg.LLM.RateLimit)
	assert.Equal(t, "memory", cfg.Session.Storage)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SESSION_STORAGE", "memory")
	t.Setenv("SESSION_SNAPSHOT_TTL", "24h")
	t.Setenv("LLM_RATE_LIMIT", "5")
	t.Setenv("PDF_RENDERER_URL", "http://renderer:9191")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Session.Storage)
	assert.Equal(t, 24*time.Hour, cfg.Session.SnapshotTTL)
	assert.Equal(t, 5, cfg.LLM.RateLimit)
	assert.Equal(t, "http://renderer:9191", cfg.Export.PDFRendererURL)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-value")

	assert.Equal(t, "key: secret-value", expandEnvVars("key: ${TEST_API_KEY}"))
	assert.Equal(t, "key: ${MISSING_VAR_XYZ}", expandEnvVars("key: ${MISSING_VAR_XYZ}"))
}
