package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/regroup/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is handled by silencing
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *Config, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreateClickSound generates a short high tick for an added token
func CreateClickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, 1320)
	if err != nil {
		sine = NewOscillator(1320, constant.ClickSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(beep.Take(rate.N(constant.ClickSoundDuration), sine),
		constant.ClickSoundDuration, constant.ClickSoundAttack, constant.ClickSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundClick))
}

// CreatePopSound generates a falling blip for a removed token
func CreatePopSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	half := constant.PopSoundDuration / 2
	hi := NewEnvelope(NewOscillator(660, half, WaveSine, rate), half, constant.PopSoundAttack, half/2, rate)
	lo := NewEnvelope(NewOscillator(440, half, WaveSine, rate), half, constant.PopSoundAttack, half/2, rate)

	return newVolume(beep.Seq(hi, lo), effectVolume(cfg, SoundPop))
}

// CreateWhooshSound generates a noise swell for a break in progress
func CreateWhooshSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constant.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constant.WhooshSoundDuration, constant.WhooshSoundAttack, constant.WhooshSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundWhoosh))
}

// CreateChimeSound generates a two-note chime for a completed break
func CreateChimeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constant.ChimeSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.ChimeSoundNote1Duration, constant.ChimeSoundAttack, constant.ChimeSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constant.ChimeSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.ChimeSoundNote2Duration, constant.ChimeSoundAttack, constant.ChimeSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundChime))
}

// CreateBellSound generates a ding for a level change
func CreateBellSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, constant.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundFundamentalRelease, rate)

	// Harmonic (Octave up)
	over := NewOscillator(1760.0, constant.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.BellSoundDuration, constant.BellSoundAttack, constant.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, effectVolume(cfg, SoundBell))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundClick:
		return CreateClickSound(cfg)
	case SoundPop:
		return CreatePopSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	default:
		return nil
	}
}
