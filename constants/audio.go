package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound (one fast tick)
	MinSoundGap = 100 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 150 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Bell Sound Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Chime Sound Timing (bonus life)
const (
	ChimeSoundNote1Duration = 80 * time.Millisecond
	ChimeSoundNote2Duration = 280 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 40 * time.Millisecond
	ChimeSoundNote2Release  = 200 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverAttack       = 10 * time.Millisecond
	GameOverRelease      = 120 * time.Millisecond
)
