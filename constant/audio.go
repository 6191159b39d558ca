package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// MinSoundGap between consecutive sounds of the same kind
const MinSoundGap = 40 * time.Millisecond

// Click Sound Timing (token added)
const (
	ClickSoundDuration = 45 * time.Millisecond
	ClickSoundAttack   = 3 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Pop Sound Timing (token removed)
const (
	PopSoundDuration = 70 * time.Millisecond
	PopSoundAttack   = 3 * time.Millisecond
	PopSoundRelease  = 50 * time.Millisecond
)

// Whoosh Sound Timing (break started)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Chime Sound Timing (break finished)
const (
	ChimeSoundNote1Duration = 80 * time.Millisecond
	ChimeSoundNote2Duration = 280 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 40 * time.Millisecond
	ChimeSoundNote2Release  = 200 * time.Millisecond
)

// Bell Sound Timing (level selected)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)
