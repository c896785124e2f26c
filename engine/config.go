package engine

import (
	"fmt"

	"github.com/lixenwraith/math-snake/board"
	"github.com/lixenwraith/math-snake/constants"
)

// Config holds the rules of a game
type Config struct {
	Grid         board.Grid
	MaxLength    int // Ceiling for both creature length and lives
	InitialLives int // Starting lives and starting creature length
	DefaultSpeed int
	BonusEvery   int // Correct answers per bonus life
}

// DefaultConfig returns the classic rules
func DefaultConfig() Config {
	return Config{
		Grid:         board.Grid{Width: constants.GridWidth, Height: constants.GridHeight},
		MaxLength:    constants.MaxLength,
		InitialLives: constants.InitialLives,
		DefaultSpeed: constants.DefaultSpeed,
		BonusEvery:   constants.BonusEvery,
	}
}

// Validate checks the rule set is playable
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 1 || c.Grid.Height < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.MaxLength < 1:
		return fmt.Errorf("%w: max length %d", ErrInvalidConfig, c.MaxLength)
	case c.InitialLives < 1 || c.InitialLives > c.MaxLength:
		return fmt.Errorf("%w: initial lives %d not in [1,%d]", ErrInvalidConfig, c.InitialLives, c.MaxLength)
	case c.DefaultSpeed < constants.MinSpeed || c.DefaultSpeed > constants.MaxSpeed:
		return fmt.Errorf("%w: speed %d not in [%d,%d]", ErrInvalidConfig, c.DefaultSpeed, constants.MinSpeed, constants.MaxSpeed)
	case c.BonusEvery < 1:
		return fmt.Errorf("%w: bonus every %d", ErrInvalidConfig, c.BonusEvery)
	}
	return nil
}
