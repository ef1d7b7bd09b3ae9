package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.yaml")
	yml := `
window:
  title: Reels
reels:
  count: 3
  spin_duration: 1500ms
  stop_stagger: 250ms
seed: 42
show_memalloc: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Reels", c.Window.Title)
	assert.Equal(t, int32(1024), c.Window.Width)
	assert.Equal(t, 3, c.Reels.Count)
	assert.Equal(t, 1500*time.Millisecond, c.Reels.SpinDuration)
	assert.Equal(t, 250*time.Millisecond, c.Reels.StopStagger)
	assert.Equal(t, uint64(42), c.Seed)
	assert.True(t, c.ShowMemAlloc)
	assert.Equal(t, Default().Assets, c.Assets)
}

func TestLoadInvalidFallsBackWithError(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("window: [unclosed"), 0644))
	c, err := Load(bad)
	require.Error(t, err)
	assert.Equal(t, Default(), c)

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("reels:\n  speed_min: 2\n  speed_max: 1\n"), 0644))
	c, err = Load(inverted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, Default(), c)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero reels":       func(c *Config) { c.Reels.Count = 0 },
		"zero duration":    func(c *Config) { c.Reels.SpinDuration = 0 },
		"negative stagger": func(c *Config) { c.Reels.StopStagger = -time.Millisecond },
		"no icons":         func(c *Config) { c.Assets.Icons = nil },
		"tiny window":      func(c *Config) { c.Window.Width = 0 },
		"loud":             func(c *Config) { c.MusicVolume = 2 },
		"flat button":      func(c *Config) { c.Button.Height = 0 },
		"narrow reels":     func(c *Config) { c.Reels.Count = int(c.Reels.FrameWidth/MinReelWidth) + 1 },
		"reel per pixel":   func(c *Config) { c.Reels.Count = 600 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestValidateAcceptsNarrowestReel(t *testing.T) {
	c := Default()
	c.Reels.Count = 5
	c.Reels.FrameWidth = 5 * MinReelWidth
	assert.NoError(t, c.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "slot.yaml")
	c := Default()
	c.Reels.Count = 4
	c.Reels.StopStagger = 750 * time.Millisecond
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
