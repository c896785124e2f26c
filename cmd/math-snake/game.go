package main

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/math-snake/audio"
	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/core"
	"github.com/lixenwraith/math-snake/creature"
	"github.com/lixenwraith/math-snake/engine"
	"github.com/lixenwraith/math-snake/event"
	"github.com/lixenwraith/math-snake/input"
	"github.com/lixenwraith/math-snake/render"
)

// game owns the single session and drives it from terminal events and two clocks:
// the frame clock for drawing and the simulation clock for ticks
type game struct {
	screen   tcell.Screen
	engine   *engine.Engine
	session  engine.Session
	renderer *render.Renderer
	input    *input.Machine
	sound    *audio.SoundManager
	logger   *log.Logger

	// Headings typed since the last tick, applied in order on the next one
	pending []creature.Heading
}

func newGame(screen tcell.Screen, eng *engine.Engine, rng render.Rand, sound *audio.SoundManager, logger *log.Logger) *game {
	g := &game{
		screen:   screen,
		engine:   eng,
		session:  eng.NewSession(),
		renderer: render.NewRenderer(screen, eng.Config().Grid, rng),
		input:    input.NewMachine(),
		sound:    sound,
		logger:   logger,
		pending:  make([]creature.Heading, 0, 4),
	}
	logger.Printf("session %s created", g.session.ID)
	return g
}

// run blocks until the player quits or a hard engine failure occurs
func (g *game) run() error {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	})

	frames := time.NewTicker(constants.FrameUpdateInterval)
	defer frames.Stop()

	speed := g.session.Speed
	ticks := time.NewTicker(constants.TickInterval(speed))
	defer ticks.Stop()

	for {
		select {
		case ev := <-events:
			quit, err := g.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case <-ticks.C:
			if err := g.tick(); err != nil {
				return err
			}

		case <-frames.C:
			g.renderer.Draw(g.session.Snapshot())
		}

		if g.session.Speed != speed {
			speed = g.session.Speed
			ticks.Reset(constants.TickInterval(speed))
		}
	}
}

// handleEvent applies one terminal event and reports whether the program should exit
func (g *game) handleEvent(ev tcell.Event) (bool, error) {
	intent := g.input.Process(ev, g.session.Snapshot())
	if intent == nil {
		return false, nil
	}

	switch intent.Type {
	case input.IntentQuit:
		return true, nil
	case input.IntentResize:
		g.renderer.Resize()
	case input.IntentClick:
		if a, ok := g.renderer.HitTest(intent.X, intent.Y); ok {
			return false, g.apply(a)
		}
	case input.IntentAction:
		return false, g.apply(intent.Action)
	}
	return false, nil
}

// apply routes an action to the engine. Steering is buffered for the next tick.
// Rejected actions are logged; other errors are fatal.
func (g *game) apply(a engine.Action) error {
	if a.Type == engine.ActionSetHeading && g.session.State == engine.StateRunning {
		g.pending = append(g.pending, a.Heading)
		return nil
	}

	next, err := g.engine.HandleInput(g.session, a)
	switch {
	case errors.Is(err, engine.ErrNoCategory):
		g.renderer.Notify(constants.NoModePrompt)
		return nil
	case errors.Is(err, engine.ErrInvalidAction):
		g.logger.Printf("ignored: %v", err)
		return nil
	case err != nil:
		return err
	}

	if next.State != g.session.State {
		g.pending = g.pending[:0]
	}
	g.session = next
	g.flushEvents()
	return nil
}

func (g *game) tick() error {
	next, err := g.engine.Tick(g.session, g.pending...)
	if err != nil {
		return err
	}
	g.pending = g.pending[:0]
	g.session = next
	g.flushEvents()
	return nil
}

// flushEvents hands drained markers to the renderer and audio
func (g *game) flushEvents() {
	var markers []event.Marker
	g.session, markers = g.session.DrainEvents()
	if len(markers) == 0 {
		return
	}
	g.renderer.Spawn(markers)
	if g.sound != nil {
		g.sound.PlayMarkers(markers)
	}
}
