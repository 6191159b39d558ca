// Package config loads settings from defaults, an optional TOML or YAML file,
// REGROUP_* environment variables and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/lixenwraith/regroup/constant"
)

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalid           = errors.New("invalid config")
)

// Themes
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Config holds every tunable setting
type Config struct {
	StartLevel int           `toml:"start_level" yaml:"start_level" json:"start_level" env:"START_LEVEL" jsonschema:"minimum=1,maximum=5,default=1,description=Level shown at startup"`
	ShowWork   bool          `toml:"show_work" yaml:"show_work" json:"show_work" env:"SHOW_WORK" jsonschema:"default=false,description=Show the decomposition expression"`
	BreakDelay time.Duration `toml:"break_delay" yaml:"break_delay" json:"break_delay" env:"BREAK_DELAY" jsonschema:"description=Pause before a break completes (nanoseconds in JSON; duration string in TOML and YAML)"`
	Theme      string        `toml:"theme" yaml:"theme" json:"theme" env:"THEME" jsonschema:"enum=default,enum=mono,default=default"`
	Locale     string        `toml:"locale" yaml:"locale" json:"locale" env:"LOCALE" jsonschema:"default=en,description=BCP 47 tag for number formatting"`
	Debug      bool          `toml:"debug" yaml:"debug" json:"debug" env:"DEBUG" jsonschema:"default=false,description=Write logs to logs/regroup.log"`
	Audio      AudioConfig   `toml:"audio" yaml:"audio" json:"audio" envPrefix:"AUDIO_"`
}

// AudioConfig holds sound feedback settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled" yaml:"enabled" json:"enabled" env:"ENABLED" jsonschema:"default=true"`
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume" json:"master_volume" env:"MASTER_VOLUME" jsonschema:"minimum=0,maximum=1,default=0.5"`
	SampleRate   int     `toml:"sample_rate" yaml:"sample_rate" json:"sample_rate" env:"SAMPLE_RATE" jsonschema:"exclusiveMinimum=0,default=44100"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		StartLevel: constant.LevelFirst,
		ShowWork:   false,
		BreakDelay: constant.BreakDelay,
		Theme:      ThemeDefault,
		Locale:     "en",
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constant.AudioSampleRate,
		},
	}
}

// Validate checks ranges; the first violation is returned wrapped in ErrInvalid
func (c *Config) Validate() error {
	switch {
	case c.StartLevel < constant.LevelFirst || c.StartLevel > constant.LevelLast:
		return fmt.Errorf("%w: start_level %d outside %d..%d", ErrInvalid, c.StartLevel, constant.LevelFirst, constant.LevelLast)
	case c.BreakDelay < constant.BreakDelayMin || c.BreakDelay > constant.BreakDelayMax:
		return fmt.Errorf("%w: break_delay %v outside %v..%v", ErrInvalid, c.BreakDelay, constant.BreakDelayMin, constant.BreakDelayMax)
	case c.Theme != ThemeDefault && c.Theme != ThemeMono:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master_volume %v outside 0..1", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d must be positive", ErrInvalid, c.Audio.SampleRate)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
	}
	return nil
}
