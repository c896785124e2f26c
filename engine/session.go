package engine

import (
	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/event"
	"github.com/lixenwraith/math-snake/problem"
)

// Session is the complete state of one game. It is a value: engine operations
// take a Session and return a new one, leaving the input untouched.
type Session struct {
	ID    string
	State State

	Lives        int
	ScoreCorrect int
	ScoreTotal   int

	// Heading is the direction used by the last step; PendingHeading applies on the next
	Heading        creature.Heading
	PendingHeading creature.Heading

	Creature creature.Creature
	Targets  []board.Target
	Problem  problem.Problem

	Category problem.Category
	Speed    int

	Events     event.Queue
	TickCount  uint64
	Generation uint64 // Incremented on every reset
}

// clone returns a copy sharing no mutable storage with s.
// Creature and Problem are immutable values; the event queue is a fixed array.
func (s Session) clone() Session {
	next := s
	if s.Targets != nil {
		next.Targets = make([]board.Target, len(s.Targets))
		copy(next.Targets, s.Targets)
	}
	return next
}

// DrainEvents returns s with an empty event queue and the markers it held, oldest first
func (s Session) DrainEvents() (Session, []event.Marker) {
	markers := s.Events.Consume()
	return s, markers
}

// Snapshot is the read-only view handed to presentation layers
type Snapshot struct {
	ID         string
	State      State
	Creature   []board.Point // Head first
	Targets    []board.Target
	Question   string
	Lives      int
	Correct    int
	Total      int
	Category   problem.Category
	Speed      int
	Heading    creature.Heading
	Events     []event.Marker // Pending markers, not consumed
	Tick       uint64
	Generation uint64
}

// Snapshot captures the view of s. Slices are fresh copies.
func (s Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.ID,
		State:      s.State,
		Creature:   s.Creature.Cells(),
		Question:   s.Problem.Question,
		Lives:      s.Lives,
		Correct:    s.ScoreCorrect,
		Total:      s.ScoreTotal,
		Category:   s.Category,
		Speed:      s.Speed,
		Heading:    s.Heading,
		Events:     s.Events.Peek(),
		Tick:       s.TickCount,
		Generation: s.Generation,
	}
	if len(s.Targets) > 0 {
		snap.Targets = make([]board.Target, len(s.Targets))
		copy(snap.Targets, s.Targets)
	}
	return snap
}
