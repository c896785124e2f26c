package engine

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/event"
	"github.com/lixenwraith/math-snake/problem"
)

// constRand always draws the lowest value and never shuffles
type constRand int

func (c constRand) Intn(n int) int             { return int(c) % n }
func (c constRand) Shuffle(int, func(int, int)) {}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg, rand.New(rand.NewSource(7)), WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)
	return e
}

func startSession(t *testing.T, e *Engine, category problem.Category) Session {
	t.Helper()
	s := e.NewSession()
	s, err := e.HandleInput(s, SelectCategory(category))
	require.NoError(t, err)
	s, err = e.HandleInput(s, Start)
	require.NoError(t, err)
	require.Equal(t, StateRunning, s.State)
	return s
}

// targetAhead replaces the session targets with one answer on the cell the head enters next
func targetAhead(e *Engine, s Session, correct bool) Session {
	next := s.clone()
	cell := e.cfg.Grid.Wrap(next.Creature.Head().Add(next.PendingHeading.Vector()))
	next.Targets = []board.Target{{Cell: cell, Value: "ahead", Correct: correct}}
	return next
}

func TestNewSessionDefaults(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := e.NewSession()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateWelcome, s.State)
	assert.Equal(t, problem.CategoryNone, s.Category)
	assert.Equal(t, 3, s.Speed)
	assert.Equal(t, 10, s.Lives)
	assert.Equal(t, 10, s.Creature.Len())
	assert.Equal(t, creature.HeadingRight, s.Heading)
	assert.Equal(t, board.Point{X: 13, Y: 8}, s.Creature.Head())
	assert.Empty(t, s.Targets)

	other := e.NewSession()
	assert.NotEqual(t, s.ID, other.ID)
}

func TestStartRequiresCategory(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := e.NewSession()

	out, err := e.HandleInput(s, Start)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCategory))
	assert.True(t, errors.Is(err, ErrInvalidAction))
	assert.Equal(t, s, out)
}

func TestStartPlacesTargets(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	for _, category := range problem.Categories {
		t.Run(category.String(), func(t *testing.T) {
			s := startSession(t, e, category)

			require.Len(t, s.Targets, 4)
			assert.Equal(t, 1, board.CountCorrect(s.Targets))
			assert.NotEmpty(t, s.Problem.Question)
			seen := make(map[board.Point]bool)
			for _, tg := range s.Targets {
				assert.False(t, s.Creature.Occupies(tg.Cell), "target %v under creature", tg)
				assert.False(t, seen[tg.Cell], "duplicate cell %v", tg.Cell)
				seen[tg.Cell] = true
			}
		})
	}
}

func TestWelcomeSelections(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := e.NewSession()

	s, err := e.HandleInput(s, SelectSpeed(5))
	require.NoError(t, err)
	assert.Equal(t, 5, s.Speed)

	for _, level := range []int{0, 6, -1} {
		out, err := e.HandleInput(s, SelectSpeed(level))
		assert.True(t, errors.Is(err, ErrInvalidSpeed), "speed %d", level)
		assert.Equal(t, s, out)
	}

	out, err := e.HandleInput(s, SelectCategory(problem.Category(42)))
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.Equal(t, s, out)

	s, err = e.HandleInput(s, SelectCategory(problem.CategoryRounding))
	require.NoError(t, err)
	s, err = e.HandleInput(s, SelectCategory(problem.CategoryEquivalent))
	require.NoError(t, err)
	assert.Equal(t, problem.CategoryEquivalent, s.Category)
	assert.Equal(t, StateWelcome, s.State)
}

func TestTickStepsAndWraps(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryEquivalent)
	s.Targets = nil

	for i := 0; i < e.cfg.Grid.Width; i++ {
		var err error
		s, err = e.Tick(s)
		require.NoError(t, err)
	}
	assert.Equal(t, board.Point{X: 13, Y: 8}, s.Creature.Head(), "full lap returns to start")
	assert.Equal(t, uint64(26), s.TickCount)
	assert.Equal(t, 10, s.Creature.Len())
}

func TestCorrectHitsAwardBonusLives(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryImproperProper)

	for i := 0; i < 10; i++ {
		var err error
		s, err = e.Tick(targetAhead(e, s, true))
		require.NoError(t, err)
	}

	assert.Equal(t, StateRunning, s.State)
	assert.Equal(t, 10, s.ScoreCorrect)
	assert.Equal(t, 10, s.ScoreTotal)
	assert.Equal(t, 12, s.Lives)
	assert.Equal(t, 12, s.Creature.Len())
	require.Len(t, s.Targets, 4, "fresh problem after each correct answer")
	assert.Equal(t, 1, board.CountCorrect(s.Targets))

	var celebrations, bonuses int
	for _, m := range s.Events.Peek() {
		switch m.Type {
		case event.MarkerCelebration:
			celebrations++
		case event.MarkerBonusLife:
			bonuses++
		}
	}
	assert.Equal(t, 10, celebrations)
	assert.Equal(t, 2, bonuses)
}

func TestBonusCappedAtMaxLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLength = 10
	e := newTestEngine(t, cfg)
	s := startSession(t, e, problem.CategoryPercentages)

	for i := 0; i < 5; i++ {
		var err error
		s, err = e.Tick(targetAhead(e, s, true))
		require.NoError(t, err)
	}
	assert.Equal(t, 5, s.ScoreCorrect)
	assert.Equal(t, 10, s.Lives)
	assert.Equal(t, 10, s.Creature.Len())
}

func TestIncorrectHitRemovesOnlyThatTarget(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryRounding)

	ahead := e.cfg.Grid.Wrap(s.Creature.Head().Add(creature.HeadingRight.Vector()))
	s.Targets = []board.Target{
		{Cell: board.Point{X: 0, Y: 0}, Value: "4.59", Correct: true},
		{Cell: ahead, Value: "4.60"},
		{Cell: board.Point{X: 5, Y: 5}, Value: "4.58"},
		{Cell: board.Point{X: 7, Y: 2}, Value: "4.57"},
	}

	next, err := e.Tick(s)
	require.NoError(t, err)

	assert.Equal(t, 9, next.Lives)
	assert.Equal(t, 9, next.Creature.Len())
	assert.Equal(t, 0, next.ScoreCorrect)
	assert.Equal(t, 1, next.ScoreTotal)
	require.Len(t, next.Targets, 3)
	assert.Equal(t, -1, board.TargetAt(next.Targets, ahead))
	assert.Equal(t, 1, board.CountCorrect(next.Targets))

	markers := next.Events.Peek()
	require.Len(t, markers, 1)
	assert.Equal(t, event.MarkerError, markers[0].Type)
	assert.Equal(t, ahead, markers[0].Cell)
	assert.Equal(t, "4.60", markers[0].Value)

	assert.Len(t, s.Targets, 4, "input session untouched")
}

// Two targets sharing the entered cell: only the first in target order is resolved per step
func TestStackedTargetsResolveOnePerStep(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())

	t.Run("wrong first", func(t *testing.T) {
		s := startSession(t, e, problem.CategoryRounding)
		ahead := e.cfg.Grid.Wrap(s.Creature.Head().Add(creature.HeadingRight.Vector()))
		s.Targets = []board.Target{
			{Cell: ahead, Value: "4.60"},
			{Cell: ahead, Value: "4.59", Correct: true},
			{Cell: board.Point{X: 5, Y: 5}, Value: "4.58"},
		}

		next, err := e.Tick(s)
		require.NoError(t, err)
		assert.Equal(t, 9, next.Lives)
		assert.Equal(t, 0, next.ScoreCorrect)
		assert.Equal(t, 1, next.ScoreTotal)
		require.Len(t, next.Targets, 2)
		assert.Equal(t, board.Target{Cell: ahead, Value: "4.59", Correct: true}, next.Targets[0])

		markers := next.Events.Peek()
		require.Len(t, markers, 1)
		assert.Equal(t, event.MarkerError, markers[0].Type)

		// Stepping off the cell leaves the deferred answer where it was
		moved, err := e.Tick(next)
		require.NoError(t, err)
		assert.Equal(t, next.Targets, moved.Targets)
		assert.Equal(t, 1, moved.ScoreTotal)

		// Resolving again on the same cell acts on the deferred answer
		again, err := e.Resolve(next)
		require.NoError(t, err)
		assert.Equal(t, 1, again.ScoreCorrect)
		assert.Equal(t, 2, again.ScoreTotal)
		assert.Equal(t, 9, again.Lives)
		assert.Equal(t, 1, board.CountCorrect(again.Targets))
	})

	t.Run("correct first", func(t *testing.T) {
		s := startSession(t, e, problem.CategoryRounding)
		ahead := e.cfg.Grid.Wrap(s.Creature.Head().Add(creature.HeadingRight.Vector()))
		s.Targets = []board.Target{
			{Cell: ahead, Value: "4.59", Correct: true},
			{Cell: ahead, Value: "4.60"},
		}

		next, err := e.Tick(s)
		require.NoError(t, err)
		assert.Equal(t, 10, next.Lives, "stacked wrong answer is not applied")
		assert.Equal(t, 1, next.ScoreCorrect)
		assert.Equal(t, 1, next.ScoreTotal)
		assert.Equal(t, 1, board.CountCorrect(next.Targets))

		markers := next.Events.Peek()
		require.Len(t, markers, 1)
		assert.Equal(t, event.MarkerCelebration, markers[0].Type)
	})
}

func TestLivesExhaustedEndsGame(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryEquivalent)
	s.Lives = 1

	over, err := e.Tick(targetAhead(e, s, false))
	require.NoError(t, err)
	assert.Equal(t, StateGameOver, over.State)
	assert.Equal(t, 0, over.Lives)

	markers := over.Events.Peek()
	require.NotEmpty(t, markers)
	assert.Equal(t, event.MarkerGameOver, markers[len(markers)-1].Type)

	again, err := e.Tick(over, creature.HeadingUp)
	require.NoError(t, err)
	assert.Equal(t, over, again, "tick is a no-op after game over")

	_, err = e.HandleInput(over, SetHeading(creature.HeadingUp))
	assert.True(t, errors.Is(err, ErrInvalidAction))
	_, err = e.HandleInput(over, Pause)
	assert.True(t, errors.Is(err, ErrInvalidAction))
}

func TestReverseHeadingRejected(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryEquivalent)
	s.Targets = nil

	out, err := e.HandleInput(s, SetHeading(creature.HeadingLeft))
	assert.True(t, errors.Is(err, ErrReverseHeading))
	assert.Equal(t, s, out)

	s, err = e.HandleInput(s, SetHeading(creature.HeadingUp))
	require.NoError(t, err)
	assert.Equal(t, creature.HeadingUp, s.PendingHeading)
	assert.Equal(t, creature.HeadingRight, s.Heading, "heading changes on the next step")

	start := s.Creature.Head()
	s, err = e.Tick(s)
	require.NoError(t, err)
	assert.Equal(t, creature.HeadingUp, s.Heading)
	assert.Equal(t, board.Point{X: start.X, Y: start.Y - 1}, s.Creature.Head())

	// Down reverses Up and is dropped; Left is applied
	s, err = e.Tick(s, creature.HeadingDown, creature.HeadingLeft)
	require.NoError(t, err)
	assert.Equal(t, creature.HeadingLeft, s.Heading)
	assert.Equal(t, board.Point{X: start.X - 1, Y: start.Y - 1}, s.Creature.Head())
}

func TestPauseResume(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryPercentages)

	paused, err := e.HandleInput(s, Pause)
	require.NoError(t, err)
	assert.Equal(t, StatePaused, paused.State)

	still, err := e.Tick(paused)
	require.NoError(t, err)
	assert.Equal(t, paused, still)

	_, err = e.HandleInput(paused, Pause)
	assert.True(t, errors.Is(err, ErrInvalidAction))
	_, err = e.HandleInput(paused, SetHeading(creature.HeadingUp))
	assert.True(t, errors.Is(err, ErrInvalidAction))

	resumed, err := e.HandleInput(paused, Resume)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, resumed.State)
	assert.Equal(t, s.Creature, resumed.Creature)
	assert.Equal(t, s.Targets, resumed.Targets)
}

func TestRestartPreservesSettings(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := e.NewSession()
	s, err := e.HandleInput(s, SelectSpeed(5))
	require.NoError(t, err)
	s, err = e.HandleInput(s, SelectCategory(problem.CategoryPercentages))
	require.NoError(t, err)
	s, err = e.HandleInput(s, Start)
	require.NoError(t, err)
	generation := s.Generation

	s, err = e.Tick(targetAhead(e, s, false))
	require.NoError(t, err)
	require.Equal(t, 9, s.Lives)

	s, err = e.HandleInput(s, Pause)
	require.NoError(t, err)
	s, err = e.HandleInput(s, Restart)
	require.NoError(t, err)

	assert.Equal(t, StateRunning, s.State)
	assert.Equal(t, 10, s.Lives)
	assert.Equal(t, 0, s.ScoreCorrect)
	assert.Equal(t, 0, s.ScoreTotal)
	assert.Equal(t, 10, s.Creature.Len())
	assert.Equal(t, problem.CategoryPercentages, s.Category)
	assert.Equal(t, 5, s.Speed)
	assert.Equal(t, generation+1, s.Generation)
	assert.Zero(t, s.Events.Len())
	assert.Len(t, s.Targets, 4)
}

func TestQuitReturnsToWelcome(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryRounding)
	s.Lives = 1
	s, err := e.Tick(targetAhead(e, s, false))
	require.NoError(t, err)
	require.Equal(t, StateGameOver, s.State)

	s, err = e.HandleInput(s, Quit)
	require.NoError(t, err)
	assert.Equal(t, StateWelcome, s.State)
	assert.Empty(t, s.Targets)
	assert.Empty(t, s.Problem.Question)
	assert.Equal(t, problem.CategoryRounding, s.Category)

	s, err = e.HandleInput(s, Start)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, s.State)
}

func TestGenerationFailureIsHard(t *testing.T) {
	e, err := New(DefaultConfig(), constRand(0), WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)

	s := e.NewSession()
	s, err = e.HandleInput(s, SelectCategory(problem.CategoryPercentages))
	require.NoError(t, err)

	out, err := e.HandleInput(s, Start)
	require.Error(t, err)
	assert.True(t, errors.Is(err, problem.ErrGenerationExhausted))
	assert.False(t, errors.Is(err, ErrInvalidAction))
	assert.Equal(t, s, out)
}

// TestRandomPlayInvariants drives a session with random headings and checks score and length bounds
func TestRandomPlayInvariants(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	rng := rand.New(rand.NewSource(99))
	s := startSession(t, e, problem.CategoryEquivalent)
	headings := []creature.Heading{creature.HeadingUp, creature.HeadingDown, creature.HeadingLeft, creature.HeadingRight}

	for i := 0; i < 5000; i++ {
		var err error
		if s.State == StateGameOver {
			s, err = e.HandleInput(s, Restart)
			require.NoError(t, err)
		}
		s, err = e.Tick(s, headings[rng.Intn(len(headings))])
		require.NoError(t, err)

		require.LessOrEqual(t, s.ScoreCorrect, s.ScoreTotal)
		require.LessOrEqual(t, s.Lives, e.cfg.MaxLength)
		require.GreaterOrEqual(t, s.Lives, 0)
		if s.State == StateRunning {
			require.Equal(t, s.Lives, s.Creature.Len())
			if len(s.Targets) > 0 {
				require.Equal(t, 1, board.CountCorrect(s.Targets))
			}
		}
		s, _ = s.DrainEvents()
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryImproperProper)
	s = targetAhead(e, s, false)
	before := s.clone()

	next, err := e.Tick(s)
	require.NoError(t, err)
	require.NotEqual(t, s.Lives, next.Lives)
	assert.Equal(t, before, s)
}

func TestDrainEvents(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryImproperProper)
	s, err := e.Tick(targetAhead(e, s, true))
	require.NoError(t, err)

	drained, markers := s.DrainEvents()
	require.Len(t, markers, 1)
	assert.Equal(t, event.MarkerCelebration, markers[0].Type)
	assert.Equal(t, "ahead", markers[0].Value)
	assert.Zero(t, drained.Events.Len())
	assert.Equal(t, 1, s.Events.Len(), "original session keeps its markers")
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	s := startSession(t, e, problem.CategoryRounding)

	snap := s.Snapshot()
	assert.Equal(t, s.ID, snap.ID)
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, s.Problem.Question, snap.Question)
	assert.Equal(t, s.Creature.Cells(), snap.Creature)
	require.Len(t, snap.Targets, 4)

	snap.Targets[0].Value = "changed"
	snap.Creature[0] = board.Point{X: -1, Y: -1}
	assert.NotEqual(t, "changed", s.Targets[0].Value)
	assert.NotEqual(t, board.Point{X: -1, Y: -1}, s.Creature.Head())
}

func TestConfigValidate(t *testing.T) {
	mutate := func(fn func(*Config)) Config {
		cfg := DefaultConfig()
		fn(&cfg)
		return cfg
	}
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"zero width", mutate(func(c *Config) { c.Grid.Width = 0 }), false},
		{"lives above max", mutate(func(c *Config) { c.InitialLives = c.MaxLength + 1 }), false},
		{"zero lives", mutate(func(c *Config) { c.InitialLives = 0 }), false},
		{"speed too high", mutate(func(c *Config) { c.DefaultSpeed = 6 }), false},
		{"bonus zero", mutate(func(c *Config) { c.BonusEvery = 0 }), false},
		{"lives equal max", mutate(func(c *Config) { c.InitialLives = c.MaxLength }), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			}
		})
	}
}

func TestStateAndActionNames(t *testing.T) {
	assert.Equal(t, "GameOver", StateGameOver.String())
	assert.Equal(t, "Unknown", State(0).String())
	assert.Equal(t, "SetHeading(Up)", SetHeading(creature.HeadingUp).String())
	assert.Equal(t, "SelectSpeed(4)", SelectSpeed(4).String())
	assert.Equal(t, "Quit", Quit.String())
}
