package engine

import "github.com/lixenwraith/math-snake/engine/fsm"

// State is the session lifecycle state
type State fsm.StateID

const (
	StateWelcome State = iota + 1
	StateRunning
	StatePaused
	StateGameOver
)

var stateNames = map[State]string{
	StateWelcome:  "Welcome",
	StateRunning:  "Running",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}
