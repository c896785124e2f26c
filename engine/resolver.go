package engine

import (
	"fmt"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/event"
)

// Resolve applies the consequences of the creature head's position: answer
// hits, bonus lives and the game-over transition. It is a no-op outside Running.
func (e *Engine) Resolve(s Session) (Session, error) {
	if s.State != StateRunning {
		return s, nil
	}

	next := s.clone()
	head := next.Creature.Head()

	if i := board.TargetAt(next.Targets, head); i >= 0 {
		hit := next.Targets[i]
		if hit.Correct {
			if err := e.resolveCorrect(&next, hit); err != nil {
				return s, err
			}
		} else {
			e.resolveIncorrect(&next, i)
		}
	}

	if next.Lives <= 0 {
		next.Lives = 0
		next.Events.Push(event.Marker{Type: event.MarkerGameOver, Cell: head, Tick: next.TickCount})
		over, err := e.fire(next, eventLivesExhausted, Action{})
		if err != nil {
			return s, fmt.Errorf("game over transition: %w", err)
		}
		e.logger.Printf("session %s: game over, %d/%d correct", over.ID, over.ScoreCorrect, over.ScoreTotal)
		return over, nil
	}
	return next, nil
}

// resolveCorrect scores the hit, grows the creature every BonusEvery answers
// while below MaxLength, and replaces all targets with a new problem
func (e *Engine) resolveCorrect(s *Session, hit board.Target) error {
	s.ScoreCorrect++
	s.ScoreTotal++
	s.Events.Push(event.Marker{Type: event.MarkerCelebration, Cell: hit.Cell, Value: hit.Value, Tick: s.TickCount})

	if s.ScoreCorrect%e.cfg.BonusEvery == 0 && s.Lives < e.cfg.MaxLength {
		s.Lives++
		s.Creature = s.Creature.Grow()
		s.Events.Push(event.Marker{Type: event.MarkerBonusLife, Cell: hit.Cell, Tick: s.TickCount})
	}

	return e.spawnTargets(s)
}

// resolveIncorrect costs a life and a segment and removes only the hit target
func (e *Engine) resolveIncorrect(s *Session, i int) {
	hit := s.Targets[i]
	s.ScoreTotal++
	s.Lives--
	s.Creature = s.Creature.Shrink()
	s.Targets = board.RemoveTarget(s.Targets, i)
	s.Events.Push(event.Marker{Type: event.MarkerError, Cell: hit.Cell, Value: hit.Value, Tick: s.TickCount})
}
