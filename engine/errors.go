package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidAction marks an action not permitted in the current state; the session is unchanged
	ErrInvalidAction = errors.New("invalid action")

	ErrNoCategory      = fmt.Errorf("%w: no category selected", ErrInvalidAction)
	ErrInvalidCategory = fmt.Errorf("%w: unknown category", ErrInvalidAction)
	ErrInvalidSpeed    = fmt.Errorf("%w: speed out of range", ErrInvalidAction)
	ErrReverseHeading  = fmt.Errorf("%w: reverse heading", ErrInvalidAction)

	ErrInvalidConfig = errors.New("invalid engine config")
)
