package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.StartLevel)
	assert.False(t, cfg.ShowWork)
	assert.Equal(t, 600*time.Millisecond, cfg.BreakDelay)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "regroup.toml", `
start_level = 4
show_work = true
break_delay = "250ms"
locale = "de"

[audio]
enabled = false
master_volume = 0.2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.StartLevel)
	assert.True(t, cfg.ShowWork)
	assert.Equal(t, 250*time.Millisecond, cfg.BreakDelay)
	assert.Equal(t, "de", cfg.Locale)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.2, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, Default().Audio.SampleRate, cfg.Audio.SampleRate, "absent keys keep defaults")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "regroup.yaml", `
start_level: 5
theme: mono
break_delay: 1s
audio:
  sample_rate: 48000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.StartLevel)
	assert.Equal(t, ThemeMono, cfg.Theme)
	assert.Equal(t, time.Second, cfg.BreakDelay)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "empty.yml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "regroup.ini", "start_level=2")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "regroup.toml", `start_levle = 2`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "regroup.toml", `start_level = 2`)
	t.Setenv("REGROUP_START_LEVEL", "3")
	t.Setenv("REGROUP_AUDIO_ENABLED", "false")
	t.Setenv("REGROUP_BREAK_DELAY", "900ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.StartLevel)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 900*time.Millisecond, cfg.BreakDelay)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"level too low":   func(c *Config) { c.StartLevel = 0 },
		"level too high":  func(c *Config) { c.StartLevel = 6 },
		"delay too short": func(c *Config) { c.BreakDelay = time.Millisecond },
		"delay too long":  func(c *Config) { c.BreakDelay = time.Minute },
		"unknown theme":   func(c *Config) { c.Theme = "neon" },
		"volume":          func(c *Config) { c.Audio.MasterVolume = 1.5 },
		"sample rate":     func(c *Config) { c.Audio.SampleRate = 0 },
		"locale":          func(c *Config) { c.Locale = "not a tag!" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema must list properties")
	assert.Contains(t, props, "start_level")
	assert.Contains(t, props, "audio")
}

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, "regroup.toml", `start_level = 1`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var level atomic.Int64
	require.NoError(t, Watch(ctx, path, func(cfg *Config, err error) {
		if err == nil {
			level.Store(int64(cfg.StartLevel))
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte(`start_level = 5`), 0o644))

	require.Eventually(t, func() bool { return level.Load() == 5 },
		3*time.Second, 20*time.Millisecond)
}
