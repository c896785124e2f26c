package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("%w: target %d from %s", ErrUnknownState, t.TargetID, node.Name)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// OnEnter registers an action run when id becomes active
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit registers an action run when id stops being active
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}
