package board

import (
	"errors"
	"log"

	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/problem"
)

// ErrPlacementDegraded marks a target placed on an occupied cell after the attempt cap.
// It is logged, never returned.
var ErrPlacementDegraded = errors.New("target placement attempt cap exhausted")

// Rand is the random source consumed by the placer.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Placer assigns answer values to free grid cells
type Placer struct {
	grid        Grid
	rng         Rand
	logger      *log.Logger
	maxAttempts int
	degraded    int
}

// NewPlacer creates a placer for grid. A nil logger uses log.Default().
func NewPlacer(grid Grid, rng Rand, logger *log.Logger) *Placer {
	if logger == nil {
		logger = log.Default()
	}
	return &Placer{
		grid:        grid,
		rng:         rng,
		logger:      logger,
		maxAttempts: constants.MaxPlacementAttempts,
	}
}

// Place shuffles the problem's answers and puts each on a cell not in occupied
// and not under a previously placed target
func (p *Placer) Place(prob problem.Problem, occupied []Point) []Target {
	answers := prob.Answers()
	p.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	taken := make(map[Point]struct{}, len(occupied)+len(answers))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	targets := make([]Target, 0, len(answers))
	for _, value := range answers {
		cell := p.freeCell(taken, value)
		taken[cell] = struct{}{}
		targets = append(targets, Target{
			Cell:    cell,
			Value:   value,
			Correct: value == prob.CorrectAnswer,
		})
	}
	return targets
}

// Degraded returns how many targets were placed on an occupied cell so far
func (p *Placer) Degraded() int {
	return p.degraded
}

// freeCell draws random cells until one is free or the cap is hit, then keeps the last draw
func (p *Placer) freeCell(taken map[Point]struct{}, value string) Point {
	var cell Point
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		cell = Point{X: p.rng.Intn(p.grid.Width), Y: p.rng.Intn(p.grid.Height)}
		if _, busy := taken[cell]; !busy {
			return cell
		}
	}

	p.degraded++
	p.logger.Printf("[WARN] %v: %q placed at occupied cell (%d,%d) after %d attempts",
		ErrPlacementDegraded, value, cell.X, cell.Y, p.maxAttempts)
	return cell
}
