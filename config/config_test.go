package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/koopman/config"
	"github.com/iamNilotpal/koopman/pkg/koopman"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "koopman32", cfg.Checksum.Algorithm)
	assert.Equal(t, uint8(koopman.DefaultSeed), cfg.Checksum.Seed)
	assert.False(t, cfg.Compression.Enable)
	assert.Equal(t, uint8(3), cfg.Compression.Level)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
checksum:
  algorithm: koopman16-parity
  seed: 42
compression:
  enable: true
  level: 2
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "koopman16-parity", cfg.Checksum.Algorithm)
	assert.Equal(t, uint8(42), cfg.Checksum.Seed)
	assert.True(t, cfg.Compression.Enable)
	assert.Equal(t, uint8(2), cfg.Compression.Level)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
checksum:
  algorithm: koopman8
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "koopman8", cfg.Checksum.Algorithm)
	// Unset keys fall back to the defaults.
	assert.Equal(t, uint8(koopman.DefaultSeed), cfg.Checksum.Seed)
	assert.False(t, cfg.Compression.Enable)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "checksum: [not a mapping")
		_, err := config.LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing algorithm", func(t *testing.T) {
		path := writeConfig(t, `
checksum:
  algorithm: ""
`)
		_, err := config.LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("bad compression level", func(t *testing.T) {
		path := writeConfig(t, `
compression:
  enable: true
  level: 9
`)
		_, err := config.LoadConfig(path)
		assert.Error(t, err)
	})
}
