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
	t.Setenv("CONFIG_DIR", t.TempDir()) // no files, defaults only

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Breaker.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Contains(t, cfg.LoadedFrom, "defaults")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CIRCUIT_BREAKER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Breaker.Enabled)
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	base := `
server:
  address: ":7070"
cors:
  allowed_origins:
    - "https://pipelines.example.com"
metrics:
  namespace: custom_ns
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o644))
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, []string{"https://pipelines.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "custom_ns", cfg.Metrics.Namespace)
	assert.Contains(t, cfg.LoadedFrom, "base.yaml")
}

func TestLoadEnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"),
		[]byte("server:\n  address: \":7070\"\n"), 0o644))
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("SERVER_ADDRESS", ":6060")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Address)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"),
		[]byte("server: [not a mapping"), 0o644))
	t.Setenv("CONFIG_DIR", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("rejects empty address", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Server.Address = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects tracing without endpoint", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Tracing.Enabled = true
		cfg.Tracing.Endpoint = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects out of range failure threshold", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Breaker.FailureThreshold = 1.5
		assert.Error(t, cfg.Validate())
	})
}
