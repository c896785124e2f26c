package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// EventType identifies a trigger routed through the machine
type EventType int

// Sentinel errors
var (
	ErrNoTransition = errors.New("no transition for event")
	ErrUnknownState = errors.New("unknown state")
)

// Machine is a generic finite state machine graph.
// T is the context type passed to guards and actions (e.g., *engine.transitionContext).
// The active state is owned by the caller and passed to Fire, so one Machine serves any
// number of independent sessions.
type Machine[T any] struct {
	// Graph Data (Immutable after build)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states.
// TargetID equal to the source makes an internal transition: actions run, enter/exit do not.
type Transition[T any] struct {
	Event    EventType
	TargetID StateID
	Guard    GuardFunc[T]    // nil = always allowed
	Actions  []ActionFunc[T] // run between exit and enter
}

// GuardFunc returns nil if the transition may occur, otherwise the rejection reason
type GuardFunc[T any] func(ctx T) error

// ActionFunc executes a side effect; an error aborts the transition
type ActionFunc[T any] func(ctx T) error
