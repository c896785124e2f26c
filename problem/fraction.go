package problem

import "fmt"

// improperDeltas perturb an improper numerator; zero is excluded so every draw differs
var improperDeltas = [...]int{-2, -1, 1, 2}

func (g *Generator) improperProper() (Problem, error) {
	denominator := g.between(2, 9)
	whole := g.between(1, 4)
	fractional := g.between(1, denominator-1)

	if g.rng.Intn(2) == 0 {
		return g.toMixed(whole, fractional, denominator)
	}
	return g.toImproper(whole, fractional, denominator)
}

// toMixed asks for the mixed number form of (whole*d + fractional)/d
func (g *Generator) toMixed(whole, fractional, denominator int) (Problem, error) {
	numerator := whole*denominator + fractional
	correct := formatMixed(whole, fractional, denominator)

	wrong, err := g.collect(correct, func() (string, bool) {
		w := whole + g.between(-2, 2)
		f := fractional + g.between(-2, 2)
		if w < 0 || f <= 0 || f >= denominator {
			return "", false
		}
		return formatMixed(w, f, denominator), true
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Category:         CategoryImproperProper,
		Question:         fmt.Sprintf("Convert to a mixed number: %s", formatFraction(numerator, denominator)),
		CorrectAnswer:    correct,
		IncorrectAnswers: wrong,
	}, nil
}

// toImproper asks for the improper fraction form of a mixed number
func (g *Generator) toImproper(whole, fractional, denominator int) (Problem, error) {
	numerator := whole*denominator + fractional
	correct := formatFraction(numerator, denominator)

	wrong, err := g.collect(correct, func() (string, bool) {
		n := numerator + improperDeltas[g.rng.Intn(len(improperDeltas))]
		if n <= 0 {
			return "", false
		}
		return formatFraction(n, denominator), true
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Category:         CategoryImproperProper,
		Question:         fmt.Sprintf("Convert to an improper fraction: %s", formatMixed(whole, fractional, denominator)),
		CorrectAnswer:    correct,
		IncorrectAnswers: wrong,
	}, nil
}

func (g *Generator) equivalent() (Problem, error) {
	denominator := g.between(2, 9)
	numerator := g.between(1, denominator-1)
	return g.equivalentFor(numerator, denominator)
}

// equivalentFor scales n/d by two for the answer and samples non-equivalent fractions as distractors
func (g *Generator) equivalentFor(numerator, denominator int) (Problem, error) {
	const factor = 2
	correct := formatFraction(numerator*factor, denominator*factor)

	wrong, err := g.collect(correct, func() (string, bool) {
		n := g.between(1, 19)
		d := g.between(2, 19)
		if Equivalent(numerator, denominator, n, d) {
			return "", false
		}
		return formatFraction(n, d), true
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Category:         CategoryEquivalent,
		Question:         fmt.Sprintf("Find an equivalent fraction to %s", formatFraction(numerator, denominator)),
		CorrectAnswer:    correct,
		IncorrectAnswers: wrong,
	}, nil
}

// Equivalent reports whether n1/d1 == n2/d2 by cross-multiplication
func Equivalent(n1, d1, n2, d2 int) bool {
	return n1*d2 == n2*d1
}

func formatFraction(numerator, denominator int) string {
	return fmt.Sprintf("%d/%d", numerator, denominator)
}

func formatMixed(whole, numerator, denominator int) string {
	return fmt.Sprintf("%d %d/%d", whole, numerator, denominator)
}
