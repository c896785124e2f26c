package problem

import "fmt"

var percentDenominators = [...]int{2, 5, 10, 20, 50, 100, 1000}

// percentDecimalDenominator is the only denominator whose answer keeps one decimal place
const percentDecimalDenominator = 1000

func (g *Generator) percentage() (Problem, error) {
	denominator := percentDenominators[g.rng.Intn(len(percentDenominators))]
	numerator := g.between(1, denominator-1)
	return g.percentageFor(numerator, denominator)
}

// percentageFor converts n/d to a percentage; distractors shift it by up to twenty units.
// The unit is one percent, or a tenth of a percent for the decimal case.
func (g *Generator) percentageFor(numerator, denominator int) (Problem, error) {
	var value int
	var format func(int) string

	if denominator == percentDecimalDenominator {
		// 100*n/1000 percent is exactly n tenths of a percent
		value = numerator
		format = func(tenths int) string { return formatFixed(tenths, 1) + "%" }
	} else {
		value = (200*numerator + denominator) / (2 * denominator)
		format = func(percent int) string { return fmt.Sprintf("%d%%", percent) }
	}

	correct := format(value)

	wrong, err := g.collect(correct, func() (string, bool) {
		v := value + g.between(-20, 20)
		if v < 0 {
			return "", false
		}
		return format(v), true
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Category:         CategoryPercentages,
		Question:         fmt.Sprintf("Convert %s to a percentage.", formatFraction(numerator, denominator)),
		CorrectAnswer:    correct,
		IncorrectAnswers: wrong,
	}, nil
}
