package creature

import "github.com/lixenwraith/math-snake/board"

// Heading is the direction of travel
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingNames = [...]string{"Up", "Down", "Left", "Right"}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "Unknown"
}

// Vector returns the unit step for h; screen coordinates, y grows downward
func (h Heading) Vector() board.Point {
	switch h {
	case HeadingUp:
		return board.Point{X: 0, Y: -1}
	case HeadingDown:
		return board.Point{X: 0, Y: 1}
	case HeadingLeft:
		return board.Point{X: -1, Y: 0}
	default:
		return board.Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// CanTurn reports whether next is allowed after moving along h
func (h Heading) CanTurn(next Heading) bool {
	return next != h.Opposite()
}
