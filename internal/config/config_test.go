package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, dir string) (Config, error) {
	t.Helper()
	return Load(LoadOptions{ConfigPath: dir, EnvFile: filepath.Join(dir, ".env")})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFrom(t, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, float64(20), cfg.Server.RateRPS)
	require.Equal(t, 40, cfg.Server.RateBurst)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.False(t, cfg.Log.File.Enabled)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: ":9000"
  read_timeout: 2s
  rate_burst: 5
log:
  level: debug
  format: json
  file:
    enabled: true
    dir: /var/log/hresult
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hresult.yaml"), []byte(yaml), 0o600))

	cfg, err := loadFrom(t, dir)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 5, cfg.Server.RateBurst)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Log.File.Enabled)
	require.Equal(t, "/var/log/hresult", cfg.Log.File.Dir)
	require.Equal(t, 7, cfg.Log.File.MaxAgeDays)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hresult.yaml"), []byte("server:\n  addr: \":9000\"\n"), 0o600))
	t.Setenv("HRESULT_SERVER_ADDR", ":7000")
	t.Setenv("HRESULT_SERVER_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := loadFrom(t, dir)
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Server.Addr)
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HRESULT_LOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("HRESULT_LOG_LEVEL") })

	cfg, err := loadFrom(t, dir)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	testData := []struct {
		scenario string
		yaml     string
	}{
		{scenario: "unknown log format", yaml: "log:\n  format: xml\n"},
		{scenario: "negative rate", yaml: "server:\n  rate_rps: -1\n"},
		{scenario: "malformed yaml", yaml: "server: [\n"},
	}

	for _, td := range testData {
		t.Run(td.scenario, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "hresult.yaml"), []byte(td.yaml), 0o600))

			_, err := loadFrom(t, dir)
			require.Error(t, err)
		})
	}
}
