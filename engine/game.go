package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/engine/fsm"
	"github.com/lixenwraith/math-snake/problem"
)

var problemNone problem.Problem

// Rand is the random source shared by problem generation and target placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Engine applies the game rules to sessions. It holds no session state; the
// random source is its only mutable dependency, so an Engine is not safe for
// concurrent use.
type Engine struct {
	cfg     Config
	gen     *problem.Generator
	placer  *board.Placer
	machine *fsm.Machine[*transitionContext]
	logger  *log.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger routes engine diagnostics to logger
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine for cfg drawing randomness from rng
func New(cfg Config, rng Rand, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	e := &Engine{
		cfg:    cfg,
		gen:    problem.NewGenerator(rng),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.placer = board.NewPlacer(cfg.Grid, rng, e.logger)

	machine, err := buildMachine()
	if err != nil {
		return nil, err
	}
	e.machine = machine
	return e, nil
}

// Config returns the rules the engine was built with
func (e *Engine) Config() Config {
	return e.cfg
}

// DegradedPlacements returns how many targets were placed on occupied cells
func (e *Engine) DegradedPlacements() int {
	return e.placer.Degraded()
}

// NewSession returns a fresh session on the welcome screen
func (e *Engine) NewSession() Session {
	s := Session{
		ID:    uuid.NewString(),
		State: State(e.machine.InitialStateID),
		Speed: e.cfg.DefaultSpeed,
	}
	e.resetRound(&s)
	s.Generation = 0
	return s
}

// HandleInput applies a player action. A rejected action returns s unchanged
// with an error wrapping ErrInvalidAction. Any other error is a hard failure.
func (e *Engine) HandleInput(s Session, a Action) (Session, error) {
	next, err := e.fire(s, fsm.EventType(a.Type), a)
	if err != nil {
		if errors.Is(err, fsm.ErrNoTransition) {
			return s, fmt.Errorf("%w: %s in %s", ErrInvalidAction, a, s.State)
		}
		return s, err
	}
	if next.State != s.State {
		e.logger.Printf("session %s: %s -> %s on %s", s.ID, s.State, next.State, a)
	}
	return next, nil
}

// Tick advances a running session by one step. Headings in input are applied
// as SetHeading actions first; rejected reversals are dropped. Sessions in any
// other state are returned unchanged.
func (e *Engine) Tick(s Session, input ...creature.Heading) (Session, error) {
	if s.State != StateRunning {
		return s, nil
	}

	next := s
	for _, h := range input {
		steered, err := e.HandleInput(next, SetHeading(h))
		if err != nil {
			if errors.Is(err, ErrInvalidAction) {
				continue
			}
			return s, err
		}
		next = steered
	}

	next = next.clone()
	next.Heading = next.PendingHeading
	next.Creature = next.Creature.Step(next.Heading, e.cfg.Grid)
	next.TickCount++

	resolved, err := e.Resolve(next)
	if err != nil {
		return s, err
	}
	return resolved, nil
}

// fire routes ev through the lifecycle graph on a copy of s
func (e *Engine) fire(s Session, ev fsm.EventType, a Action) (Session, error) {
	next := s.clone()
	tc := &transitionContext{engine: e, session: &next, action: a}
	state, err := e.machine.Fire(tc, fsm.StateID(s.State), ev)
	if err != nil {
		return s, err
	}
	next.State = State(state)
	return next, nil
}

// resetRound restores lives, scores, creature and heading. ID, category and speed survive.
func (e *Engine) resetRound(s *Session) {
	s.Lives = e.cfg.InitialLives
	s.ScoreCorrect = 0
	s.ScoreTotal = 0
	s.Heading = creature.HeadingRight
	s.PendingHeading = creature.HeadingRight
	s.Creature = creature.NewLine(e.cfg.Grid.Center(), creature.HeadingRight, e.cfg.InitialLives, e.cfg.MaxLength, e.cfg.Grid)
	s.Targets = nil
	s.Problem = problemNone
	s.Events.Clear()
	s.TickCount = 0
	s.Generation++
}

// spawnTargets generates a problem for the session category and places its answers
func (e *Engine) spawnTargets(s *Session) error {
	prob, err := e.gen.Generate(s.Category)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}
	s.Problem = prob
	s.Targets = e.placer.Place(prob, s.Creature.Cells())
	return nil
}
