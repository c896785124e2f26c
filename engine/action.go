package engine

import (
	"fmt"

	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/engine/fsm"
	"github.com/lixenwraith/math-snake/problem"
)

// ActionType discriminates player actions; values double as FSM events
type ActionType fsm.EventType

const (
	ActionSetHeading ActionType = iota + 1
	ActionPause
	ActionResume
	ActionRestart
	ActionQuit
	ActionSelectCategory
	ActionSelectSpeed
	ActionStart
)

// eventLivesExhausted is raised by the resolver, never by the player
const eventLivesExhausted fsm.EventType = 100

var actionNames = map[ActionType]string{
	ActionSetHeading:     "SetHeading",
	ActionPause:          "Pause",
	ActionResume:         "Resume",
	ActionRestart:        "Restart",
	ActionQuit:           "Quit",
	ActionSelectCategory: "SelectCategory",
	ActionSelectSpeed:    "SelectSpeed",
	ActionStart:          "Start",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Action is a discrete input event. Only the field matching Type is meaningful.
type Action struct {
	Type     ActionType
	Heading  creature.Heading
	Category problem.Category
	Speed    int
}

func (a Action) String() string {
	switch a.Type {
	case ActionSetHeading:
		return fmt.Sprintf("%s(%s)", a.Type, a.Heading)
	case ActionSelectCategory:
		return fmt.Sprintf("%s(%s)", a.Type, a.Category)
	case ActionSelectSpeed:
		return fmt.Sprintf("%s(%d)", a.Type, a.Speed)
	default:
		return a.Type.String()
	}
}

// SetHeading steers the creature on the next tick
func SetHeading(h creature.Heading) Action {
	return Action{Type: ActionSetHeading, Heading: h}
}

// SelectCategory picks the problem category on the welcome screen
func SelectCategory(c problem.Category) Action {
	return Action{Type: ActionSelectCategory, Category: c}
}

// SelectSpeed picks the speed level on the welcome screen
func SelectSpeed(level int) Action {
	return Action{Type: ActionSelectSpeed, Speed: level}
}

// Parameterless actions
var (
	Pause   = Action{Type: ActionPause}
	Resume  = Action{Type: ActionResume}
	Restart = Action{Type: ActionRestart}
	Quit    = Action{Type: ActionQuit}
	Start   = Action{Type: ActionStart}
)
