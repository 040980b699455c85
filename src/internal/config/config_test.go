package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("lib", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, "library.json", cfg.File)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lib.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: from-config.json\nlog-level: info\nlog-format: json\n"), 0o644))

	t.Run("config file over defaults", func(t *testing.T) {
		cfg, err := Load(newFlags(t, "--config", cfgPath), "")
		require.NoError(t, err)
		assert.Equal(t, "from-config.json", cfg.File)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, cfgPath, cfg.ConfigFile)
	})

	t.Run("env over config file", func(t *testing.T) {
		t.Setenv("LIB_FILE", "from-env.json")
		cfg, err := Load(newFlags(t, "--config", cfgPath), "")
		require.NoError(t, err)
		assert.Equal(t, "from-env.json", cfg.File)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("LIB_FILE", "from-env.json")
		cfg, err := Load(newFlags(t, "--config", cfgPath, "-f", "from-flag.yaml"), "")
		require.NoError(t, err)
		assert.Equal(t, "from-flag.yaml", cfg.File)
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LIB_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("LIB_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LIB_LOG_LEVEL"))

	cfg, err := Load(newFlags(t), envPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	_, err := Load(newFlags(t), filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")), "")
	assert.ErrorContains(t, err, "read config")
}

func TestLoadNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)

	t.Setenv("NO_COLOR", "")
	cfg, err = Load(newFlags(t, "--no-color"), "")
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}
