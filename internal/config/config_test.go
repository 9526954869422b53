package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("METEO_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "es", cfg.Locale.Language)
	assert.True(t, cfg.Server.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("METEO_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("METEO_SERVER_PORT", "9090")
	t.Setenv("METEO_LOCALE_LANGUAGE", "en")
	t.Setenv("METEO_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "en", cfg.Locale.Language)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9191
logging:
  level: warn
locale:
  language: en
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("METEO_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "en", cfg.Locale.Language)
}

func TestLoadRateLimitFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  rate_limit:
    enabled: false
    rps: 99
    burst: 77
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("METEO_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 99.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, 77, cfg.Server.RateLimit.Burst)
}

func TestLoadRateLimitEnabledAbsentKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  rate_limit:
    rps: 5
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("METEO_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, 10, cfg.Server.RateLimit.Burst)
}

func TestLoadRateLimitEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  rate_limit:
    rps: 99
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("METEO_CONFIG_FILE", configFile)
	t.Setenv("METEO_SERVER_RATE_LIMIT_RPS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Server.RateLimit.RPS)
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("METEO_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("METEO_LOGGING_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}
