package board

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid holds the play-field dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any point back into the grid (toroidal wraparound on both axes)
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Center returns the centre cell, rounding down
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// mod is the non-negative remainder
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
