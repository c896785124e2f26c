package audio

import (
	"errors"

	"github.com/lixenwraith/math-snake/event"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundError    SoundType = iota // Wrong answer buzz
	SoundBell                      // Correct answer
	SoundChime                     // Bonus life
	SoundGameOver                  // Last life lost
	soundTypeCount
)

var soundNames = [...]string{"error", "bell", "chime", "gameover"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundForMarker maps a game marker to the effect played for it
func SoundForMarker(t event.MarkerType) (SoundType, bool) {
	switch t {
	case event.MarkerCelebration:
		return SoundBell, true
	case event.MarkerError:
		return SoundError, true
	case event.MarkerBonusLife:
		return SoundChime, true
	case event.MarkerGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
