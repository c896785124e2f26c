package render

import (
	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/engine"
	"github.com/lixenwraith/math-snake/problem"
)

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether screen cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is a clickable welcome screen control
type Button struct {
	Rect
	Label    string
	Action   engine.Action
	Selected bool
}

// Layout maps grid cells to screen cells. The grid frame sits below the top panel,
// centred horizontally.
type Layout struct {
	Grid    board.Grid
	OriginX int // Screen column of the frame's left edge
	OriginY int // Screen row of the frame's top edge
}

// NewLayout centres grid inside a screen of the given size
func NewLayout(grid board.Grid, screenWidth int) Layout {
	frame := grid.Width*constants.CellWidth + 2
	return Layout{
		Grid:    grid,
		OriginX: max((screenWidth-frame)/2, 0),
		OriginY: constants.TopPanelHeight,
	}
}

// CellToScreen returns the screen column of the first character of cell p and its row
func (l Layout) CellToScreen(p board.Point) (int, int) {
	return l.OriginX + 1 + p.X*constants.CellWidth, l.OriginY + 1 + p.Y
}

// Frame returns the rectangle including the border
func (l Layout) Frame() Rect {
	return Rect{X: l.OriginX, Y: l.OriginY, W: l.Grid.Width*constants.CellWidth + 2, H: l.Grid.Height + 2}
}

// interior returns the drawable grid area inside the border
func (l Layout) interior() Rect {
	f := l.Frame()
	return Rect{X: f.X + 1, Y: f.Y + 1, W: f.W - 2, H: f.H - 2}
}

// welcomeButtons lays out speed, start and mode buttons for a screen of width w
func welcomeButtons(w int, snap engine.Snapshot) []Button {
	const (
		speedRow = 6
		startRow = 10
		modeRow  = 15
		gap      = 2
	)
	buttons := make([]Button, 0, constants.MaxSpeed+1+4)

	speeds := constants.MaxSpeed - constants.MinSpeed + 1
	rowWidth := speeds*constants.SpeedButtonWidth + (speeds-1)*gap
	x := max((w-rowWidth)/2, 0)
	for level := constants.MinSpeed; level <= constants.MaxSpeed; level++ {
		buttons = append(buttons, Button{
			Rect:     Rect{X: x, Y: speedRow, W: constants.SpeedButtonWidth, H: 3},
			Label:    string(rune('0' + level)),
			Action:   engine.SelectSpeed(level),
			Selected: snap.Speed == level,
		})
		x += constants.SpeedButtonWidth + gap
	}

	startWidth := len(constants.StartLabel) + 6
	buttons = append(buttons, Button{
		Rect:   Rect{X: max((w-startWidth)/2, 0), Y: startRow, W: startWidth, H: 3},
		Label:  constants.StartLabel,
		Action: engine.Start,
	})

	modeWidth := 2*constants.ModeButtonWidth + gap
	left := max((w-modeWidth)/2, 0)
	for i, category := range problem.Categories {
		buttons = append(buttons, Button{
			Rect: Rect{
				X: left + (i%2)*(constants.ModeButtonWidth+gap),
				Y: modeRow + (i/2)*3,
				W: constants.ModeButtonWidth,
				H: 3,
			},
			Label:    category.String(),
			Action:   engine.SelectCategory(category),
			Selected: snap.Category == category,
		})
	}
	return buttons
}
