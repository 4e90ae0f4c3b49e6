package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomyMarengo/Woki-Challenge/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "timeline"
path = "/metrics"
http_port = 9091

[seed]
generate_count = 25
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "logs/app.log", cfg.Logs.File)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9091, cfg.Metrics.HTTPPort)
	assert.Equal(t, 25, cfg.Seed.GenerateCount)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "timeline-engine", cfg.Metrics.ServiceName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 9090, cfg.Metrics.HTTPPort)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Zero(t, cfg.Seed.GenerateCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
[metrics]
enabled = true
http_port = 0
`)
	_, err := config.Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `
[seed]
generate_count = -1
`)
	_, err = config.Load(path)
	assert.Error(t, err)
}
