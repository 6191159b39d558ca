// Package audio plays short synthesized feedback sounds through beep.
package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundClick  SoundType = iota // Token added
	SoundPop                     // Token removed
	SoundWhoosh                  // Break started
	SoundChime                   // Break finished
	SoundBell                    // Level selected
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundPop:
		return "pop"
	case SoundWhoosh:
		return "whoosh"
	case SoundChime:
		return "chime"
	case SoundBell:
		return "bell"
	default:
		return "unknown"
	}
}

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns per-effect volumes tuned against each other
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [soundTypeCount]float64{
			SoundClick:  0.5,
			SoundPop:    0.6,
			SoundWhoosh: 0.5,
			SoundChime:  0.7,
			SoundBell:   0.6,
		},
	}
}

// Player plays sound effects
type Player interface {
	Play(s SoundType)
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrDisabled       = errors.New("audio disabled")
)
