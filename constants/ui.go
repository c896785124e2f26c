package constants

// UI Text
const (
	Title        = "Lodhia Fractions Snake"
	Subtitle     = "Use arrow keys or WASD to play and press Esc to pause"
	SpeedLabel   = "Game Speed"
	ModeLabel    = "Select Game Mode"
	StartLabel   = "Start Game"
	NoModePrompt = "Please select a game mode before starting the game."
	PausedLabel  = "Paused"
	PausedHint   = "Press C to continue or R to restart"
	GameOverText = "Game Over"
	GameOverHint = "Press R to restart or Q to quit to menu"
)

// UI Layout Constants
const (
	// TopPanelHeight is the number of terminal rows above the grid
	TopPanelHeight = 3

	// CellWidth is the number of terminal columns per grid cell
	CellWidth = 3

	// SpeedButtonWidth is the width of a speed selector button
	SpeedButtonWidth = 5

	// ModeButtonWidth is the width of a game mode button
	ModeButtonWidth = 28
)

// Effect Lifetimes (frames)
const (
	CheckMarkLifetime = 30
	XMarkLifetime     = 30
	ConfettiLifetime  = 60

	// ConfettiCount is the number of particles per celebration
	ConfettiCount = 30

	// NoticeLifetime is how long a prompt such as NoModePrompt stays visible
	NoticeLifetime = 120
)
