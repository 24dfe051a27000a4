package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, 960, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height)
	require.True(t, cfg.Audio.Enabled)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Zero(t, cfg.Game.Seed)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 960, cfg.Window.Width)
}

func TestLoadOverlaysFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diner.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 1280
height = 800

[game]
seed = 42
stove_cook_time = 3.5

[audio]
enabled = false

[logging]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1280, cfg.Window.Width)
	require.Equal(t, 800, cfg.Window.Height)
	require.Equal(t, uint64(42), cfg.Game.Seed)
	require.Equal(t, 3.5, cfg.Game.StoveCookTime)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format, "untouched keys keep defaults")
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("window = [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
