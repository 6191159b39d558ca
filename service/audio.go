package service

import (
	"errors"
	"log"

	"github.com/lixenwraith/regroup/audio"
	"github.com/lixenwraith/regroup/config"
)

// AudioName identifies the sound service
const AudioName = "audio"

// Audio owns the sound backend. A missing or disabled speaker is not an
// error: the service stays registered and Manager returns nil
type Audio struct {
	startMuted bool
	manager    *audio.SoundManager
}

// NewAudio creates the sound service; startMuted mutes after a successful init
func NewAudio(startMuted bool) *Audio {
	return &Audio{startMuted: startMuted}
}

func (a *Audio) Name() string           { return AudioName }
func (a *Audio) Dependencies() []string { return nil }

// Init opens the speaker with the configured sample rate and volume
func (a *Audio) Init(cfg *config.Config) error {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.MasterVolume
	ac.SampleRate = cfg.Audio.SampleRate

	sm := audio.NewSoundManager(ac)
	switch err := sm.Initialize(); {
	case err == nil:
		a.manager = sm
		if a.startMuted {
			sm.ToggleMute()
		}
	case errors.Is(err, audio.ErrDisabled):
		log.Printf("audio: disabled by config")
	default:
		log.Printf("audio: %v (continuing without sound)", err)
	}
	return nil
}

func (a *Audio) Start() error { return nil }

func (a *Audio) Stop() error {
	if a.manager != nil {
		a.manager.Cleanup()
		a.manager = nil
	}
	return nil
}

// Manager returns the sound manager, nil when audio is unavailable
func (a *Audio) Manager() *audio.SoundManager { return a.manager }

// Apply updates live settings after a config reload
func (a *Audio) Apply(cfg *config.Config) {
	if a.manager != nil {
		a.manager.SetMasterVolume(cfg.Audio.MasterVolume)
	}
}
