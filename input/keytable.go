package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/engine"
)

// KeyTable holds per-state bindings. Rune bindings are matched case-insensitively.
type KeyTable struct {
	// System keys, active in every state
	SystemKeys map[tcell.Key]IntentType

	// Steering while running
	HeadingKeys  map[tcell.Key]creature.Heading
	HeadingRunes map[rune]creature.Heading

	// Parameterless actions per state
	StateKeys  map[engine.State]map[tcell.Key]engine.Action
	StateRunes map[engine.State]map[rune]engine.Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlQ: IntentQuit,
		},

		HeadingKeys: map[tcell.Key]creature.Heading{
			tcell.KeyUp:    creature.HeadingUp,
			tcell.KeyDown:  creature.HeadingDown,
			tcell.KeyLeft:  creature.HeadingLeft,
			tcell.KeyRight: creature.HeadingRight,
		},
		HeadingRunes: map[rune]creature.Heading{
			'w': creature.HeadingUp,
			's': creature.HeadingDown,
			'a': creature.HeadingLeft,
			'd': creature.HeadingRight,
		},

		StateKeys: map[engine.State]map[tcell.Key]engine.Action{
			engine.StateWelcome: {tcell.KeyEnter: engine.Start},
			engine.StateRunning: {tcell.KeyEscape: engine.Pause},
		},
		StateRunes: map[engine.State]map[rune]engine.Action{
			engine.StateWelcome:  {' ': engine.Start},
			engine.StatePaused:   {'c': engine.Resume, 'r': engine.Restart},
			engine.StateGameOver: {'r': engine.Restart, 'q': engine.Quit},
		},
	}
}
