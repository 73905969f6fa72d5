package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/senecd/internal/config"
	"codeberg.org/mutker/senecd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetArgs strips the test binary's own flags so Load parses a clean
// command line.
func resetArgs(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	os.Args = append([]string{"senecd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "senecd.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath
}

func TestLoad(t *testing.T) {
	resetArgs(t)
	configPath := writeConfigFile(t, `
host = "192.168.178.49"
interval = 30
log_level = "debug"
verbose = true
`)
	t.Setenv("SENECD_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "192.168.178.49", cfg.Host, "Expected Host 192.168.178.49")
	assert.Equal(t, 30, cfg.Interval, "Expected Interval 30")
	assert.Equal(t, 30*time.Second, cfg.PollInterval())
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.Verbose, "Expected Verbose true")
	assert.False(t, cfg.Debug, "Expected Debug false")
}

func TestLoadDefaults(t *testing.T) {
	resetArgs(t)
	// Ensure no config file is used
	t.Setenv("SENECD_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Empty(t, cfg.Host, "Expected default Host empty")
	assert.Equal(t, config.DefaultInterval, cfg.Interval, "Expected default Interval 60")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel info")
	assert.False(t, cfg.Debug, "Expected default Debug false")
	assert.False(t, cfg.Verbose, "Expected default Verbose false")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	resetArgs(t)
	configPath := writeConfigFile(t, `
This is not a valid TOML file
`)
	t.Setenv("SENECD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestInvalidLogLevel(t *testing.T) {
	resetArgs(t)
	configPath := writeConfigFile(t, `
log_level = "invalid"
`)
	t.Setenv("SENECD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}

func TestIntervalTooShort(t *testing.T) {
	resetArgs(t)
	configPath := writeConfigFile(t, `
host = "192.168.178.49"
interval = 5
`)
	t.Setenv("SENECD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInterval))
}

func TestLogLevelFlag(t *testing.T) {
	resetArgs(t, "--log-level", "debug")
	t.Setenv("SENECD_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func TestFlagsOverrideFile(t *testing.T) {
	resetArgs(t, "--host", "10.0.0.2", "--interval", "90")
	configPath := writeConfigFile(t, `
host = "192.168.178.49"
interval = 30
`)
	t.Setenv("SENECD_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", cfg.Host, "Expected Host from flag")
	assert.Equal(t, 90, cfg.Interval, "Expected Interval from flag")
}

func TestLogLevelValidity(t *testing.T) {
	for _, level := range []config.LogLevel{
		config.LogLevelDebug, config.LogLevelInfo, config.LogLevelWarning, config.LogLevelError,
	} {
		assert.True(t, level.IsValid(), "Expected %s to be valid", level)
		_, ok := level.LoggerLevel()
		assert.True(t, ok)
	}

	assert.False(t, config.LogLevel("trace").IsValid())
}
