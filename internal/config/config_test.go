package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point the file lookup at a path that does not exist so only the
	// struct tag defaults apply.
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(52428800), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data/uploads", cfg.Paths.UploadsDir)
	assert.Equal(t, 50, cfg.Processing.PreviewRows)
	assert.Equal(t, 100, cfg.Processing.MaxHeaderRow)
	assert.True(t, cfg.Processing.SortWeekColumns)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(20), cfg.RateLimit.RPS)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("WEEKCAST_SERVER_PORT", "9090")
	t.Setenv("WEEKCAST_LOGGING_LEVEL", "debug")
	t.Setenv("WEEKCAST_PROCESSING_PREVIEW_ROWS", "10")
	t.Setenv("WEEKCAST_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Processing.PreviewRows)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadYAMLFileOverlay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "weekcast.yaml")
	yaml := `
server:
  port: 7070
processing:
  preview_rows: 25
  sort_week_columns: false
paths:
  outputs_dir: /tmp/outputs
`
	require.NoError(t, os.WriteFile(file, []byte(yaml), 0644))
	t.Setenv(ConfigFileEnv, file)
	t.Setenv("WEEKCAST_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// File values win over environment-derived ones.
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Processing.PreviewRows)
	assert.False(t, cfg.Processing.SortWeekColumns)
	assert.Equal(t, "/tmp/outputs", cfg.Paths.OutputsDir)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 100, cfg.Processing.MaxHeaderRow)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "weekcast.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server: [not a map"), 0644))
	t.Setenv(ConfigFileEnv, file)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "zero preview rows",
			mutate:  func(c *Config) { c.Processing.PreviewRows = 0 },
			wantErr: "preview rows",
		},
		{
			name:    "negative max header row",
			mutate:  func(c *Config) { c.Processing.MaxHeaderRow = -1 },
			wantErr: "max header row",
		},
		{
			name: "rate limit enabled without rps",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.RPS = 0
			},
			wantErr: "rate limit rps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Server:     ServerConfig{Port: 8080},
				Processing: ProcessingConfig{PreviewRows: 50},
				RateLimit:  RateLimitConfig{Enabled: false, RPS: 20},
			}
			tt.mutate(&cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Paths: PathsConfig{
		DataDir:    filepath.Join(dir, "data"),
		UploadsDir: filepath.Join(dir, "data", "uploads"),
		OutputsDir: filepath.Join(dir, "data", "outputs"),
	}}

	require.NoError(t, cfg.EnsureDirectories())

	for _, d := range []string{cfg.Paths.DataDir, cfg.Paths.UploadsDir, cfg.Paths.OutputsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
