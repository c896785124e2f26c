package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/engine"
	"github.com/lixenwraith/math-snake/problem"
)

// Machine parses tcell events into Intents for the current session view.
// It tracks mouse button state so a held button yields one click.
type Machine struct {
	keyTable    *KeyTable
	lastButtons tcell.ButtonMask
}

// NewMachine creates a parser with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses ev. Returns nil when the event means nothing in the current state.
func (m *Machine) Process(ev tcell.Event, snap engine.Snapshot) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev, snap)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, snap engine.Snapshot) *Intent {
	if it, ok := m.keyTable.SystemKeys[ev.Key()]; ok {
		return &Intent{Type: it}
	}

	if snap.State == engine.StateRunning {
		if h, ok := m.keyTable.HeadingKeys[ev.Key()]; ok {
			return action(engine.SetHeading(h))
		}
		if ev.Key() == tcell.KeyRune {
			if h, ok := m.keyTable.HeadingRunes[unicode.ToLower(ev.Rune())]; ok {
				return action(engine.SetHeading(h))
			}
		}
	}

	if a, ok := m.keyTable.StateKeys[snap.State][ev.Key()]; ok {
		return action(a)
	}
	if ev.Key() == tcell.KeyRune {
		if a, ok := m.keyTable.StateRunes[snap.State][unicode.ToLower(ev.Rune())]; ok {
			return action(a)
		}
	}

	if snap.State == engine.StateWelcome {
		return welcomeKey(ev, snap)
	}
	return nil
}

// welcomeKey maps menu navigation: digits pick a speed, Left/Right step it,
// Up/Down cycle the category
func welcomeKey(ev *tcell.EventKey, snap engine.Snapshot) *Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		if snap.Speed > constants.MinSpeed {
			return action(engine.SelectSpeed(snap.Speed - 1))
		}
	case tcell.KeyRight:
		if snap.Speed < constants.MaxSpeed {
			return action(engine.SelectSpeed(snap.Speed + 1))
		}
	case tcell.KeyDown:
		return action(engine.SelectCategory(cycleCategory(snap.Category, 1)))
	case tcell.KeyUp:
		return action(engine.SelectCategory(cycleCategory(snap.Category, -1)))
	case tcell.KeyRune:
		r := ev.Rune()
		if level := int(r - '0'); r >= '0' && r <= '9' && level >= constants.MinSpeed && level <= constants.MaxSpeed {
			return action(engine.SelectSpeed(level))
		}
	}
	return nil
}

// cycleCategory steps through the menu order; no selection starts at the first or last entry
func cycleCategory(current problem.Category, step int) problem.Category {
	n := len(problem.Categories)
	idx := -1
	for i, c := range problem.Categories {
		if c == current {
			idx = i
		}
	}
	if idx < 0 {
		if step > 0 {
			return problem.Categories[0]
		}
		return problem.Categories[n-1]
	}
	return problem.Categories[((idx+step)%n+n)%n]
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
	m.lastButtons = buttons
	if !pressed {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentClick, X: x, Y: y}
}

func action(a engine.Action) *Intent {
	return &Intent{Type: IntentAction, Action: a}
}
