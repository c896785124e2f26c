package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/event"
)

// Rand is the random source for particle motion.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type markKind uint8

const (
	markCheck markKind = iota
	markX
)

// mark is a glyph pinned to a grid cell for a number of frames
type mark struct {
	kind markKind
	cell board.Point
	ttl  int
}

// particle is one confetti piece in screen space
type particle struct {
	x, y   float64
	vx, vy float64
	color  tcell.Color
	glyph  rune
	ttl    int
}

var confettiGlyphs = []rune{'*', '+', '•', '·', 'x'}

// Effects holds transient visual feedback spawned from game markers
type Effects struct {
	rng       Rand
	marks     []mark
	particles []particle
}

// NewEffects creates an empty effect set
func NewEffects(rng Rand) *Effects {
	return &Effects{rng: rng}
}

// Spawn starts the effects for markers. origin is the screen position of each marker's cell.
func (e *Effects) Spawn(markers []event.Marker, origin func(board.Point) (int, int)) {
	for _, m := range markers {
		switch m.Type {
		case event.MarkerCelebration:
			e.marks = append(e.marks, mark{kind: markCheck, cell: m.Cell, ttl: constants.CheckMarkLifetime})
			x, y := origin(m.Cell)
			e.burst(float64(x+constants.CellWidth/2), float64(y))
		case event.MarkerError:
			e.marks = append(e.marks, mark{kind: markX, cell: m.Cell, ttl: constants.XMarkLifetime})
		}
	}
}

// burst emits ConfettiCount particles from (x, y) with an upward bias
func (e *Effects) burst(x, y float64) {
	for i := 0; i < constants.ConfettiCount; i++ {
		e.particles = append(e.particles, particle{
			x:     x,
			y:     y,
			vx:    (e.rng.Float64()*2 - 1) * 1.2,
			vy:    -e.rng.Float64() * 0.6,
			color: confettiColors[e.rng.Intn(len(confettiColors))],
			glyph: confettiGlyphs[e.rng.Intn(len(confettiGlyphs))],
			ttl:   constants.ConfettiLifetime,
		})
	}
}

// Step advances one frame, moving particles and expiring finished effects
func (e *Effects) Step() {
	marks := e.marks[:0]
	for _, m := range e.marks {
		m.ttl--
		if m.ttl > 0 {
			marks = append(marks, m)
		}
	}
	e.marks = marks

	particles := e.particles[:0]
	for _, p := range e.particles {
		p.ttl--
		if p.ttl <= 0 {
			continue
		}
		p.x += p.vx
		p.y += p.vy
		p.vy += 0.03 // Gravity
		particles = append(particles, p)
	}
	e.particles = particles
}

// Reset drops every active effect
func (e *Effects) Reset() {
	e.marks = e.marks[:0]
	e.particles = e.particles[:0]
}

// Active returns the number of live marks and particles
func (e *Effects) Active() (marks, particles int) {
	return len(e.marks), len(e.particles)
}
