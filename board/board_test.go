package board

import (
	"bytes"
	"log"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/math-snake/problem"
)

var testProblem = problem.Problem{
	Category:         problem.CategoryEquivalent,
	Question:         "Find an equivalent fraction to 1/2",
	CorrectAnswer:    "2/4",
	IncorrectAnswers: [3]string{"1/3", "3/7", "5/6"},
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 26, Height: 17}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"Inside", Point{5, 5}, Point{5, 5}},
		{"Past right edge", Point{26, 3}, Point{0, 3}},
		{"Past left edge", Point{-1, 3}, Point{25, 3}},
		{"Past bottom edge", Point{4, 17}, Point{4, 0}},
		{"Past top edge", Point{4, -1}, Point{4, 16}},
		{"Top-left corner", Point{-1, -1}, Point{25, 16}},
		{"Bottom-right corner", Point{26, 17}, Point{0, 0}},
		{"Far outside", Point{-53, 35}, Point{25, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Wrap(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, g.Contains(got))
		})
	}
}

func TestGridCenter(t *testing.T) {
	assert.Equal(t, Point{13, 8}, Grid{Width: 26, Height: 17}.Center())
	assert.Equal(t, 442, Grid{Width: 26, Height: 17}.Cells())
}

// TestPlaceDistinctFreeCells verifies every answer lands on its own free cell
func TestPlaceDistinctFreeCells(t *testing.T) {
	grid := Grid{Width: 26, Height: 17}
	occupied := []Point{{13, 8}, {12, 8}, {11, 8}, {10, 8}, {9, 8}}

	for seed := uint64(0); seed < 200; seed++ {
		placer := NewPlacer(grid, rand.New(rand.NewSource(seed)), nil)
		targets := placer.Place(testProblem, occupied)

		require.Len(t, targets, 4)
		assert.Equal(t, 1, CountCorrect(targets))

		cells := map[Point]bool{}
		for _, c := range occupied {
			cells[c] = true
		}
		values := make([]string, 0, len(targets))
		for _, tg := range targets {
			assert.True(t, grid.Contains(tg.Cell))
			assert.False(t, cells[tg.Cell], "seed %d: target %q on occupied cell %v", seed, tg.Value, tg.Cell)
			cells[tg.Cell] = true
			values = append(values, tg.Value)
			assert.Equal(t, tg.Value == testProblem.CorrectAnswer, tg.Correct)
		}

		sort.Strings(values)
		assert.Equal(t, []string{"1/3", "2/4", "3/7", "5/6"}, values)
		assert.Zero(t, placer.Degraded())
	}
}

// TestPlaceShufflesOrder verifies the correct answer is not always first
func TestPlaceShufflesOrder(t *testing.T) {
	grid := Grid{Width: 26, Height: 17}
	placer := NewPlacer(grid, rand.New(rand.NewSource(1)), nil)

	positions := map[int]bool{}
	for i := 0; i < 100; i++ {
		for idx, tg := range placer.Place(testProblem, nil) {
			if tg.Correct {
				positions[idx] = true
			}
		}
	}
	assert.Greater(t, len(positions), 1, "correct answer never moved from one slot")
}

// TestPlaceDegraded verifies a full board still yields four targets and logs a diagnostic
func TestPlaceDegraded(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	grid := Grid{Width: 2, Height: 1}
	placer := NewPlacer(grid, rand.New(rand.NewSource(9)), logger)

	targets := placer.Place(testProblem, []Point{{0, 0}, {1, 0}})

	require.Len(t, targets, 4)
	assert.Equal(t, 1, CountCorrect(targets))
	assert.Equal(t, 4, placer.Degraded())
	assert.Contains(t, buf.String(), ErrPlacementDegraded.Error())
	for _, tg := range targets {
		assert.True(t, grid.Contains(tg.Cell))
	}
}

func TestTargetHelpers(t *testing.T) {
	targets := []Target{
		{Cell: Point{1, 1}, Value: "a"},
		{Cell: Point{2, 2}, Value: "b", Correct: true},
		{Cell: Point{3, 3}, Value: "c"},
	}

	assert.Equal(t, 1, TargetAt(targets, Point{2, 2}))
	assert.Equal(t, -1, TargetAt(targets, Point{9, 9}))

	trimmed := RemoveTarget(targets, 0)
	require.Len(t, trimmed, 2)
	assert.Equal(t, "b", trimmed[0].Value)
	assert.Equal(t, "a", targets[0].Value, "input slice must not be modified")
}
