package problem

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/math-snake/constants"
)

// Sentinel errors
var (
	ErrGenerationExhausted = errors.New("distractor sampling did not converge")
	ErrUnknownCategory     = errors.New("unknown category")
)

// Rand is the random source consumed by the generator.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Problem is one question with its answer choices. Never mutated after creation.
type Problem struct {
	Category         Category
	Question         string
	CorrectAnswer    string
	IncorrectAnswers [constants.DistractorCount]string
}

// Answers returns the correct answer followed by the distractors
func (p Problem) Answers() []string {
	answers := make([]string, 0, constants.AnswerCount)
	answers = append(answers, p.CorrectAnswer)
	answers = append(answers, p.IncorrectAnswers[:]...)
	return answers
}

// Generator builds problems from an injected random source
type Generator struct {
	rng         Rand
	maxAttempts int
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng Rand) *Generator {
	return &Generator{
		rng:         rng,
		maxAttempts: constants.MaxGenerationAttempts,
	}
}

// Generate produces a fresh problem for the category
func (g *Generator) Generate(category Category) (Problem, error) {
	switch category {
	case CategoryImproperProper:
		return g.improperProper()
	case CategoryEquivalent:
		return g.equivalent()
	case CategoryRounding:
		return g.rounding()
	case CategoryPercentages:
		return g.percentage()
	default:
		return Problem{}, fmt.Errorf("%w: %d", ErrUnknownCategory, category)
	}
}

// between returns a uniform integer in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// distractorSet collects unique distractors in insertion order
type distractorSet struct {
	correct string
	values  []string
}

func newDistractorSet(correct string) *distractorSet {
	return &distractorSet{
		correct: correct,
		values:  make([]string, 0, constants.DistractorCount),
	}
}

// add keeps candidate if it is neither the correct answer nor a duplicate
func (d *distractorSet) add(candidate string) {
	if candidate == d.correct {
		return
	}
	for _, v := range d.values {
		if v == candidate {
			return
		}
	}
	d.values = append(d.values, candidate)
}

func (d *distractorSet) full() bool {
	return len(d.values) == constants.DistractorCount
}

// collect runs draw until three distractors are gathered or the attempt cap is hit.
// draw returns ok=false for invalid candidates.
func (g *Generator) collect(correct string, draw func() (string, bool)) ([constants.DistractorCount]string, error) {
	var out [constants.DistractorCount]string
	set := newDistractorSet(correct)

	for attempt := 0; attempt < g.maxAttempts && !set.full(); attempt++ {
		if candidate, ok := draw(); ok {
			set.add(candidate)
		}
	}

	if !set.full() {
		return out, fmt.Errorf("%w: %d of %d after %d attempts (correct %q)",
			ErrGenerationExhausted, len(set.values), constants.DistractorCount, g.maxAttempts, correct)
	}

	copy(out[:], set.values)
	return out, nil
}
