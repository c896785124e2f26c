package engine

import (
	"fmt"

	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/engine/fsm"
)

// transitionContext is the FSM context: the session copy being built and the triggering action
type transitionContext struct {
	engine  *Engine
	session *Session
	action  Action
}

type transitionRow struct {
	from    State
	event   fsm.EventType
	to      State
	guard   fsm.GuardFunc[*transitionContext]
	actions []fsm.ActionFunc[*transitionContext]
}

func ev(t ActionType) fsm.EventType { return fsm.EventType(t) }

func actions(fns ...fsm.ActionFunc[*transitionContext]) []fsm.ActionFunc[*transitionContext] {
	return fns
}

// buildMachine assembles the session lifecycle graph
func buildMachine() (*fsm.Machine[*transitionContext], error) {
	m := fsm.NewMachine[*transitionContext]()
	m.InitialStateID = fsm.StateID(StateWelcome)

	for _, st := range []State{StateWelcome, StateRunning, StatePaused, StateGameOver} {
		m.AddState(fsm.StateID(st), st.String())
	}

	table := []transitionRow{
		{from: StateWelcome, event: ev(ActionSelectCategory), to: StateWelcome, guard: guardCategory, actions: actions(applyCategory)},
		{from: StateWelcome, event: ev(ActionSelectSpeed), to: StateWelcome, guard: guardSpeed, actions: actions(applySpeed)},
		{from: StateWelcome, event: ev(ActionStart), to: StateRunning, guard: guardHasCategory, actions: actions(resetRound, spawnTargets)},

		{from: StateRunning, event: ev(ActionSetHeading), to: StateRunning, guard: guardHeading, actions: actions(applyHeading)},
		{from: StateRunning, event: ev(ActionPause), to: StatePaused},
		{from: StateRunning, event: eventLivesExhausted, to: StateGameOver},

		{from: StatePaused, event: ev(ActionResume), to: StateRunning},
		{from: StatePaused, event: ev(ActionRestart), to: StateRunning, actions: actions(resetRound, spawnTargets)},
		{from: StatePaused, event: eventLivesExhausted, to: StateGameOver},

		{from: StateGameOver, event: ev(ActionRestart), to: StateRunning, actions: actions(resetRound, spawnTargets)},
		{from: StateGameOver, event: ev(ActionQuit), to: StateWelcome, actions: actions(resetRound, clearTargets)},
	}

	for _, row := range table {
		err := m.AddTransition(fsm.StateID(row.from), fsm.Transition[*transitionContext]{
			Event:    row.event,
			TargetID: fsm.StateID(row.to),
			Guard:    row.guard,
			Actions:  row.actions,
		})
		if err != nil {
			return nil, fmt.Errorf("transition %s on %d: %w", row.from, row.event, err)
		}
	}
	return m, nil
}

// --- Guards ---

func guardCategory(tc *transitionContext) error {
	if !tc.action.Category.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, tc.action.Category)
	}
	return nil
}

func guardSpeed(tc *transitionContext) error {
	if tc.action.Speed < constants.MinSpeed || tc.action.Speed > constants.MaxSpeed {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, tc.action.Speed)
	}
	return nil
}

func guardHasCategory(tc *transitionContext) error {
	if !tc.session.Category.Valid() {
		return ErrNoCategory
	}
	return nil
}

func guardHeading(tc *transitionContext) error {
	if !tc.session.Heading.CanTurn(tc.action.Heading) {
		return fmt.Errorf("%w: %s to %s", ErrReverseHeading, tc.session.Heading, tc.action.Heading)
	}
	return nil
}

// --- Actions ---

func applyCategory(tc *transitionContext) error {
	tc.session.Category = tc.action.Category
	return nil
}

func applySpeed(tc *transitionContext) error {
	tc.session.Speed = tc.action.Speed
	return nil
}

func applyHeading(tc *transitionContext) error {
	tc.session.PendingHeading = tc.action.Heading
	return nil
}

// resetRound restores the initial round state, keeping ID, category and speed
func resetRound(tc *transitionContext) error {
	tc.engine.resetRound(tc.session)
	return nil
}

func spawnTargets(tc *transitionContext) error {
	return tc.engine.spawnTargets(tc.session)
}

func clearTargets(tc *transitionContext) error {
	tc.session.Targets = nil
	tc.session.Problem = problemNone
	return nil
}
