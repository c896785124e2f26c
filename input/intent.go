package input

import "github.com/lixenwraith/math-snake/engine"

// IntentType discriminates what a terminal event asks for
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Ctrl+Q, Ctrl+C, closed screen: leave the program
	IntentResize // Terminal resize
	IntentAction // Player action for the engine
	IntentClick  // Left-button press at a screen cell, resolved by the renderer
)

var intentNames = [...]string{"None", "Quit", "Resize", "Action", "Click"}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}

// Intent is the semantic result of one terminal event
type Intent struct {
	Type   IntentType
	Action engine.Action // IntentAction
	X, Y   int           // IntentClick, screen coordinates
}
