package event

import "github.com/lixenwraith/math-snake/board"

// MarkerType represents the kind of transient visual/audio marker
type MarkerType uint8

const (
	// MarkerCelebration signals a correct answer
	// Trigger: Resolver on correct hit | Cell: creature head
	// Consumer: renderer (check mark + confetti), audio (bell)
	MarkerCelebration MarkerType = iota

	// MarkerError signals a wrong answer
	// Trigger: Resolver on incorrect hit | Cell: consumed target
	// Consumer: renderer (X mark), audio (buzz)
	MarkerError

	// MarkerBonusLife signals a life and segment were awarded
	// Trigger: Resolver every BonusEvery correct answers below MaxLength | Cell: creature head
	// Consumer: audio (chime), renderer (lives highlight)
	MarkerBonusLife

	// MarkerGameOver signals the last life was lost
	// Trigger: Resolver when lives reach zero | Cell: creature head
	// Consumer: audio (descending tones)
	MarkerGameOver
)

var markerNames = [...]string{"Celebration", "Error", "BonusLife", "GameOver"}

func (t MarkerType) String() string {
	if int(t) < len(markerNames) {
		return markerNames[t]
	}
	return "Unknown"
}

// Marker is one transient event with the grid cell it refers to
type Marker struct {
	Type  MarkerType
	Cell  board.Point
	Value string // Answer text involved, if any
	Tick  uint64 // Simulation tick that produced the marker
}
