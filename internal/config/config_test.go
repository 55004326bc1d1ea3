package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "homey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	cfg, err := Load("", env(map[string]string{
		EnvToken:    "secret",
		EnvAddress:  "192.168.1.20",
		EnvLogLevel: "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "192.168.1.20", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeFile(t, `
token: from-file
homey_id: 5f00aa
log_level: warn
advanced_flows: false
request_timeout: 5s
`)
	cfg, err := Load(path, env(map[string]string{EnvToken: "from-env"}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "5f00aa", cfg.HomeyID)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.AdvancedFlows)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "token: [unterminated"), env(nil))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "tokn: typo\n"), env(nil))
	assert.ErrorContains(t, err, "tokn")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)

	cfg.Token = "t"
	assert.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.Token = "secret"
	assert.Equal(t, "****", cfg.Redacted().Token)
	assert.Equal(t, "secret", cfg.Token)
}
