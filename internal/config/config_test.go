package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Destroid1669/MyLibrary/internal/codec"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir string, content string) string {
	path := filepath.Join(dir, APP_NAME, CONFIG_FILE_NAME)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {

	t.Run("all fields", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "log-level: debug\nnatural: true\nreverse: true\nformat: json\ncolorize: false\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, zerolog.DebugLevel, cfg.ZerologLevel())
		assert.True(t, cfg.Natural)
		assert.True(t, cfg.Reverse)
		assert.Equal(t, codec.FORMAT_JSON, cfg.Format)
		assert.False(t, cfg.ShouldColorize())
		assert.False(t, cfg.PrettyPrintConfig().Colorize)
	})

	t.Run("missing fields have default values", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "natural: true\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, DEFAULT_LOG_LEVEL, cfg.LogLevel)
		assert.Equal(t, DEFAULT_FORMAT, cfg.Format)
		assert.Nil(t, cfg.Colorize)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "color: true\n")

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "log-level: loud\n")

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "loud")
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), "format: xml\n")

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoad(t *testing.T) {
	t.Cleanup(xdg.Reload)

	t.Run("no configuration file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()

		cfg, path, err := Load()
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("configuration file in the config home", func(t *testing.T) {
		dir := t.TempDir()
		expectedPath := writeConfigFile(t, dir, "reverse: true\n")

		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		xdg.Reload()

		cfg, path, err := Load()
		require.NoError(t, err)
		assert.Equal(t, expectedPath, path)
		assert.True(t, cfg.Reverse)
	})
}

func TestEnvFlag(t *testing.T) {
	for value, expected := range map[string]bool{"": false, "0": false, "false": false, "1": true, "yes": true} {
		t.Setenv("MYLIB_TEST_FLAG", value)
		assert.Equal(t, expected, envFlag("MYLIB_TEST_FLAG"), value)
	}

	os.Unsetenv("MYLIB_TEST_FLAG")
	assert.False(t, envFlag("MYLIB_TEST_FLAG"))
}

func TestShouldColorize(t *testing.T) {
	yes := true
	assert.True(t, Config{Colorize: &yes}.ShouldColorize())
	assert.Equal(t, SHOULD_COLORIZE, Default().ShouldColorize())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	err := Config{LogLevel: "loud", Format: "xml"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, `invalid log level "loud"`)
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}
