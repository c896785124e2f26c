package board

// Target is a labeled answer cell. Correct is for tests and must not be shown to the player.
type Target struct {
	Cell    Point
	Value   string
	Correct bool
}

// TargetAt returns the index of the first target at cell, or -1
func TargetAt(targets []Target, cell Point) int {
	for i, t := range targets {
		if t.Cell == cell {
			return i
		}
	}
	return -1
}

// RemoveTarget returns a new slice without the target at index i
func RemoveTarget(targets []Target, i int) []Target {
	out := make([]Target, 0, len(targets)-1)
	out = append(out, targets[:i]...)
	return append(out, targets[i+1:]...)
}

// CountCorrect returns how many targets carry the correct answer
func CountCorrect(targets []Target) int {
	n := 0
	for _, t := range targets {
		if t.Correct {
			n++
		}
	}
	return n
}
