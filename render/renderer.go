package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/constants"
	"github.com/lixenwraith/math-snake/engine"
	"github.com/lixenwraith/math-snake/event"
)

// Renderer draws session snapshots to a tcell screen and owns frame-based effects
type Renderer struct {
	screen  tcell.Screen
	layout  Layout
	effects *Effects

	buttons    []Button
	notice     string
	noticeTTL  int
	generation uint64
}

// NewRenderer creates a renderer for grid on screen
func NewRenderer(screen tcell.Screen, grid board.Grid, rng Rand) *Renderer {
	w, _ := screen.Size()
	return &Renderer{
		screen:  screen,
		layout:  NewLayout(grid, w),
		effects: NewEffects(rng),
	}
}

// Resize recomputes the layout after a terminal resize
func (r *Renderer) Resize() {
	w, _ := r.screen.Size()
	r.layout = NewLayout(r.layout.Grid, w)
	r.screen.Sync()
}

// Layout returns the current grid placement
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Notify shows msg under the welcome menu for NoticeLifetime frames
func (r *Renderer) Notify(msg string) {
	r.notice = msg
	r.noticeTTL = constants.NoticeLifetime
}

// Spawn starts effects for drained markers
func (r *Renderer) Spawn(markers []event.Marker) {
	r.effects.Spawn(markers, r.layout.CellToScreen)
}

// HitTest returns the action of the welcome button under screen cell (x, y)
func (r *Renderer) HitTest(x, y int) (engine.Action, bool) {
	for _, b := range r.buttons {
		if b.Contains(x, y) {
			return b.Action, true
		}
	}
	return engine.Action{}, false
}

// Draw renders one frame of snap and advances effects by one frame
func (r *Renderer) Draw(snap engine.Snapshot) {
	if snap.Generation != r.generation {
		r.effects.Reset()
		r.generation = snap.Generation
	}

	r.screen.SetStyle(style(RgbText, RgbBackground))
	r.screen.Clear()
	r.buttons = nil

	switch snap.State {
	case engine.StateWelcome:
		r.drawWelcome(snap)
	default:
		r.drawPanel(snap)
		r.drawGrid(snap)
		r.drawEffects()
		switch snap.State {
		case engine.StatePaused:
			r.drawOverlay(constants.PausedLabel, "", constants.PausedHint)
		case engine.StateGameOver:
			r.drawOverlay(constants.GameOverText, fmt.Sprintf("Score: %d/%d", snap.Correct, snap.Total), constants.GameOverHint)
		}
	}

	r.screen.Show()

	r.effects.Step()
	if r.noticeTTL > 0 {
		r.noticeTTL--
		if r.noticeTTL == 0 {
			r.notice = ""
		}
	}
}

func (r *Renderer) drawWelcome(snap engine.Snapshot) {
	w, _ := r.screen.Size()
	text := style(RgbText, RgbBackground)
	dim := style(RgbTextDim, RgbBackground)

	r.drawCentered(w, 1, constants.Title, text.Bold(true))
	r.drawCentered(w, 3, constants.Subtitle, dim)
	r.drawCentered(w, 5, constants.SpeedLabel, text)
	r.drawCentered(w, 14, constants.ModeLabel, text)

	r.buttons = welcomeButtons(w, snap)
	for _, b := range r.buttons {
		r.drawButton(b)
	}

	if r.notice != "" {
		r.drawCentered(w, 22, r.notice, style(RgbNotice, RgbBackground))
	}
}

func (r *Renderer) drawButton(b Button) {
	bg := RgbButtonBg
	if b.Selected {
		bg = RgbButtonActiveBg
	}
	st := style(RgbButtonText, bg)
	r.fill(b.Rect, st)
	label := b.Label
	lw := runewidth.StringWidth(label)
	r.drawText(b.X+max((b.W-lw)/2, 0), b.Y+b.H/2, label, st)
}

// drawPanel renders the question and the score line above the grid
func (r *Renderer) drawPanel(snap engine.Snapshot) {
	w, _ := r.screen.Size()
	text := style(RgbText, RgbBackground)

	r.drawCentered(w, 0, snap.Question, text.Bold(true))

	x := r.layout.OriginX
	x = r.drawText(x, 1, fmt.Sprintf("Score: %d/%d  ", snap.Correct, snap.Total), text)
	x = r.drawText(x, 1, fmt.Sprintf("Lives: %d  ", snap.Lives), style(RgbLives, RgbBackground))
	x = r.drawText(x, 1, fmt.Sprintf("Speed: %d  ", snap.Speed), text)
	r.drawText(x, 1, snap.Category.String(), style(RgbTextDim, RgbBackground))
}

func (r *Renderer) drawGrid(snap engine.Snapshot) {
	r.drawBorder(r.layout.Frame(), style(RgbBorder, RgbBackground))

	for i := len(snap.Creature) - 1; i >= 0; i-- {
		color := RgbCreatureBody
		if i == 0 {
			color = RgbCreatureHead
		}
		x, y := r.layout.CellToScreen(snap.Creature[i])
		st := style(color, RgbBackground)
		for dx := 0; dx < constants.CellWidth; dx++ {
			r.screen.SetContent(x+dx, y, '█', nil, st)
		}
	}

	clip := r.layout.interior()
	targetStyle := style(RgbTargetText, RgbTargetBg)
	for _, t := range snap.Targets {
		x, y := r.layout.CellToScreen(t.Cell)
		tw := runewidth.StringWidth(t.Value)
		if tw < constants.CellWidth {
			r.fill(Rect{X: x, Y: y, W: constants.CellWidth, H: 1}, targetStyle)
		}
		// Wide values spill over neighbours, centred on the cell and kept inside the frame
		start := x + (constants.CellWidth-tw)/2
		start = min(max(start, clip.X), clip.X+clip.W-tw)
		r.drawText(start, y, t.Value, targetStyle)
	}
}

func (r *Renderer) drawEffects() {
	w, h := r.screen.Size()
	for _, p := range r.effects.particles {
		x, y := int(p.x), int(p.y)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		r.screen.SetContent(x, y, p.glyph, nil, style(p.color, RgbBackground))
	}

	// Marks draw over confetti
	for _, m := range r.effects.marks {
		x, y := r.layout.CellToScreen(m.cell)
		glyph, color := '✓', RgbCheckMark
		if m.kind == markX {
			glyph, color = '✗', RgbXMark
		}
		r.screen.SetContent(x+constants.CellWidth/2, y, glyph, nil, style(color, RgbBackground).Bold(true))
	}
}

// drawOverlay renders a centred modal box over the grid
func (r *Renderer) drawOverlay(title, body, hint string) {
	w, h := r.screen.Size()
	boxW := max(runewidth.StringWidth(hint), runewidth.StringWidth(body), runewidth.StringWidth(title)) + 6
	boxH := 7
	box := Rect{X: max((w-boxW)/2, 0), Y: max((h-boxH)/2, 0), W: boxW, H: boxH}

	bg := style(RgbText, RgbOverlayBg)
	r.fill(box, bg)
	r.drawBorder(box, style(RgbBorder, RgbOverlayBg))

	r.drawCenteredIn(box, box.Y+2, title, bg.Bold(true))
	if body != "" {
		r.drawCenteredIn(box, box.Y+3, body, bg)
	}
	r.drawCenteredIn(box, box.Y+4, hint, style(RgbTextDim, RgbOverlayBg))
}

// --- Primitives ---

// drawText writes s from (x, y) and returns the column after it
func (r *Renderer) drawText(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

func (r *Renderer) drawCentered(width, y int, s string, st tcell.Style) {
	r.drawText(max((width-runewidth.StringWidth(s))/2, 0), y, s, st)
}

func (r *Renderer) drawCenteredIn(box Rect, y int, s string, st tcell.Style) {
	r.drawText(box.X+max((box.W-runewidth.StringWidth(s))/2, 0), y, s, st)
}

func (r *Renderer) fill(rect Rect, st tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (r *Renderer) drawBorder(rect Rect, st tcell.Style) {
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(rect.X, rect.Y, '┌', nil, st)
	r.screen.SetContent(right, rect.Y, '┐', nil, st)
	r.screen.SetContent(rect.X, bottom, '└', nil, st)
	r.screen.SetContent(right, bottom, '┘', nil, st)
}
