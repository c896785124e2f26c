package creature

import "github.com/lixenwraith/math-snake/board"

// Creature is the ordered body, head at index 0. Methods return new values and never
// modify the receiver's cells.
type Creature struct {
	cells     []board.Point
	maxLength int
}

// New creates a creature from cells (head first), truncated to maxLength
func New(cells []board.Point, maxLength int) Creature {
	if maxLength < 1 {
		maxLength = 1
	}
	n := len(cells)
	if n > maxLength {
		n = maxLength
	}
	body := make([]board.Point, n)
	copy(body, cells[:n])
	return Creature{cells: body, maxLength: maxLength}
}

// NewLine lays out length cells in a row ending at head, extending away from the heading
func NewLine(head board.Point, heading Heading, length, maxLength int, grid board.Grid) Creature {
	back := heading.Opposite().Vector()
	cells := make([]board.Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		cells = append(cells, grid.Wrap(p))
		p = p.Add(back)
	}
	return New(cells, maxLength)
}

// Cells returns a copy of the body, head first
func (c Creature) Cells() []board.Point {
	out := make([]board.Point, len(c.cells))
	copy(out, c.cells)
	return out
}

// Len returns the body length
func (c Creature) Len() int {
	return len(c.cells)
}

// MaxLength returns the growth ceiling
func (c Creature) MaxLength() int {
	return c.maxLength
}

// Head returns the head cell
func (c Creature) Head() board.Point {
	return c.cells[0]
}

// Tail returns the last cell
func (c Creature) Tail() board.Point {
	return c.cells[len(c.cells)-1]
}

// Step moves one cell along heading with wraparound; length is preserved
func (c Creature) Step(heading Heading, grid board.Grid) Creature {
	if len(c.cells) == 0 {
		return c
	}
	head := grid.Wrap(c.Head().Add(heading.Vector()))

	body := make([]board.Point, 0, len(c.cells))
	body = append(body, head)
	body = append(body, c.cells[:len(c.cells)-1]...)
	return Creature{cells: body, maxLength: c.maxLength}
}

// Grow appends a copy of the tail; no-op at MaxLength
func (c Creature) Grow() Creature {
	if len(c.cells) == 0 || len(c.cells) >= c.maxLength {
		return c
	}
	body := make([]board.Point, 0, len(c.cells)+1)
	body = append(body, c.cells...)
	body = append(body, c.Tail())
	return Creature{cells: body, maxLength: c.maxLength}
}

// Shrink removes the tail; no-op at length 1
func (c Creature) Shrink() Creature {
	if len(c.cells) <= 1 {
		return c
	}
	body := make([]board.Point, len(c.cells)-1)
	copy(body, c.cells)
	return Creature{cells: body, maxLength: c.maxLength}
}

// Occupies reports whether any segment is on p
func (c Creature) Occupies(p board.Point) bool {
	for _, s := range c.cells {
		if s == p {
			return true
		}
	}
	return false
}
