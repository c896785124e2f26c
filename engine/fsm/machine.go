package fsm

import "fmt"

// NewMachine creates a new FSM graph with no states
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Fire routes eventType from current. It returns the resulting state, or current and an error
// when no transition matches, a guard rejects, or an action fails. On error the context may
// have been partially modified by actions; callers working on a copy discard it.
func (m *Machine[T]) Fire(ctx T, current StateID, eventType EventType) (StateID, error) {
	node, ok := m.nodes[current]
	if !ok {
		return current, fmt.Errorf("%w: %d", ErrUnknownState, current)
	}

	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard != nil {
			if err := trans.Guard(ctx); err != nil {
				return current, err
			}
		}
		if err := m.transition(ctx, node, trans); err != nil {
			return current, err
		}
		return trans.TargetID, nil
	}

	return current, fmt.Errorf("%w: event %d in %s", ErrNoTransition, eventType, node.Name)
}

// Can reports whether current has any transition for eventType, ignoring guards
func (m *Machine[T]) Can(current StateID, eventType EventType) bool {
	node, ok := m.nodes[current]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == eventType {
			return true
		}
	}
	return false
}

// StateName returns the registered name of id
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// transition runs exit, transition actions and enter in that order
func (m *Machine[T]) transition(ctx T, source *Node[T], trans Transition[T]) error {
	internal := trans.TargetID == source.ID

	if !internal {
		for _, fn := range source.OnExit {
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}

	for _, fn := range trans.Actions {
		if err := fn(ctx); err != nil {
			return err
		}
	}

	if !internal {
		for _, fn := range m.nodes[trans.TargetID].OnEnter {
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
