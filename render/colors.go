package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Panel and menu text
	RgbTextDim    = tcell.NewRGBColor(150, 150, 160) // Hints
	RgbBorder     = tcell.NewRGBColor(90, 95, 120)   // Grid frame

	RgbCreatureHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbCreatureBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green

	RgbTargetText = tcell.NewRGBColor(0, 0, 0)       // Dark text on target
	RgbTargetBg   = tcell.NewRGBColor(255, 210, 120) // Light amber

	RgbCheckMark = tcell.NewRGBColor(0, 255, 0) // Correct answer
	RgbXMark     = tcell.NewRGBColor(255, 0, 0) // Wrong answer

	RgbButtonBg       = tcell.NewRGBColor(240, 240, 240)
	RgbButtonText     = tcell.NewRGBColor(0, 0, 0)
	RgbButtonActiveBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue

	RgbNotice    = tcell.NewRGBColor(255, 80, 80)   // Prompt text
	RgbOverlayBg = tcell.NewRGBColor(40, 42, 58)    // Modal background
	RgbLives     = tcell.NewRGBColor(255, 120, 120) // Lives counter
)

// confettiColors are cycled by particles
var confettiColors = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),
	tcell.NewRGBColor(255, 200, 0),
	tcell.NewRGBColor(80, 220, 80),
	tcell.NewRGBColor(100, 150, 255),
	tcell.NewRGBColor(220, 110, 255),
}

func style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
