package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/regroup/constant"
)

// SoundManager mixes effect streamers into the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager; nothing plays until Initialize
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		now:   time.Now,
	}
}

// Initialize opens the speaker at the configured sample rate
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues an effect; rapid repeats of one sound are throttled
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s < 0 || s >= soundTypeCount {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[s]) < constant.MinSoundGap {
		return
	}
	sm.lastPlayed[s] = now

	streamer := GetSoundEffect(s, &sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMasterVolume changes the volume of subsequently played effects
func (sm *SoundManager) SetMasterVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.MasterVolume = v
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether effects are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted || !sm.initialized
}
