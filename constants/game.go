package constants

import "time"

// Grid Dimensions
const (
	// GridWidth is the number of columns in the play field
	GridWidth = 26

	// GridHeight is the number of rows in the play field
	GridHeight = 17
)

// Creature and Lives
const (
	// MaxLength caps both the creature length and the lives counter
	MaxLength = 24

	// InitialLives is the starting lives count and starting creature length
	InitialLives = 10

	// BonusEvery awards a life and a segment every N correct answers
	BonusEvery = 5
)

// Answer Choices
const (
	// DistractorCount is the number of incorrect answers per problem
	DistractorCount = 3

	// AnswerCount is the number of targets on the board per problem
	AnswerCount = DistractorCount + 1
)

// Retry Caps
const (
	// MaxPlacementAttempts bounds the random cell search per target
	MaxPlacementAttempts = 100

	// MaxGenerationAttempts bounds distractor sampling per problem.
	// Every category converges in a handful of draws; hitting this is a defect.
	MaxGenerationAttempts = 1000
)

// Speed Levels
const (
	// MinSpeed is the slowest selectable speed level
	MinSpeed = 1

	// MaxSpeed is the fastest selectable speed level
	MaxSpeed = 5

	// DefaultSpeed is the speed level used until the player picks one
	DefaultSpeed = 3
)

// speedTicksPerSecond maps speed level to simulation ticks per second
var speedTicksPerSecond = [MaxSpeed + 1]int{0, 5, 6, 7, 8, 9}

// TicksPerSecond returns the tick rate for a speed level, clamped to the valid range
func TicksPerSecond(speed int) int {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return speedTicksPerSecond[speed]
}

// TickInterval returns the wall-clock duration between simulation ticks for a speed level
func TickInterval(speed int) time.Duration {
	return time.Second / time.Duration(TicksPerSecond(speed))
}

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the marker ring capacity, must be a power of two
	EventQueueSize = 64

	// EventBufferMask is used for ring index wrapping
	EventBufferMask = EventQueueSize - 1
)
