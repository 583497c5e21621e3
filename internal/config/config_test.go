package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuriken/anim"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shuriken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	m, err := cfg.AnimMode()
	require.NoError(t, err)
	assert.Equal(t, anim.ModeStar, m)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
mode: logo
surface: headless
headless:
  hz: 30
  frames: 120
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "logo", cfg.Mode)
	assert.Equal(t, SurfaceHeadless, cfg.Surface)
	assert.Equal(t, 30, cfg.Headless.Hz)
	assert.Equal(t, uint64(120), cfg.Headless.Frames)
	assert.Equal(t, uint64(60), cfg.Headless.DigestEvery, "unset keys keep defaults")
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "colour: red\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "hexagon" }},
		{"surface", func(c *Config) { c.Surface = "vr" }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"scale", func(c *Config) { c.Window.Scale = -1 }},
		{"tps", func(c *Config) { c.Window.TPS = 0 }},
		{"hz", func(c *Config) { c.Headless.Hz = 0 }},
		{"level", func(c *Config) { c.Log.Level = "shout" }},
		{"encoding", func(c *Config) { c.Log.Encoding = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFlagsOnlyApplyWhenSet(t *testing.T) {
	cfg := Default()
	cfg.Mode = "logo" // as if from a file

	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse([]string{"-headless", "-ticks", "10", "-seed", "42"}))
	f.Apply(fs, &cfg)

	assert.Equal(t, "logo", cfg.Mode, "unset flag keeps file value")
	assert.Equal(t, SurfaceHeadless, cfg.Surface)
	assert.Equal(t, uint64(10), cfg.Headless.Frames)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestConfigFlagPath(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse([]string{"-config", "a.yaml", "-term"}))

	cfg := Default()
	f.Apply(fs, &cfg)
	assert.Equal(t, "a.yaml", f.Path)
	assert.Equal(t, SurfaceTerminal, cfg.Surface)
}
