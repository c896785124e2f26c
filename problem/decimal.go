package problem

import (
	"fmt"
	"strings"
)

// Rounding places, counted in digits after the decimal point
const (
	PlaceTenths      = 1
	PlaceHundredths  = 2
	PlaceThousandths = 3
)

func (g *Generator) rounding() (Problem, error) {
	thousandths := g.between(1000, 9999)
	place := g.between(PlaceTenths, PlaceThousandths)
	return g.roundingFor(thousandths, place)
}

// roundingFor builds the problem for the value thousandths/1000 rounded to place.
// All arithmetic stays in integers so half-way values round up exactly.
func (g *Generator) roundingFor(thousandths, place int) (Problem, error) {
	unit := pow10(PlaceThousandths - place)
	rounded := (thousandths + unit/2) / unit
	correct := formatFixed(rounded, place)

	wrong, err := g.collect(correct, func() (string, bool) {
		k := g.between(1, 3)
		if g.rng.Intn(2) == 0 {
			k = -k
		}
		v := rounded + k
		if v < 0 {
			return "", false
		}
		return formatFixed(v, place), true
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Category:         CategoryRounding,
		Question:         fmt.Sprintf("Round %s to the %s place.", formatTrimmed(thousandths), placeName(place)),
		CorrectAnswer:    correct,
		IncorrectAnswers: wrong,
	}, nil
}

func placeName(place int) string {
	switch place {
	case PlaceHundredths:
		return "hundredths"
	case PlaceThousandths:
		return "thousandths"
	default:
		return "tenths"
	}
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// formatFixed prints v scaled down by 10^places with exactly places decimals
func formatFixed(v, places int) string {
	if places == 0 {
		return fmt.Sprintf("%d", v)
	}
	scale := pow10(places)
	return fmt.Sprintf("%d.%0*d", v/scale, places, v%scale)
}

// formatTrimmed prints thousandths/1000 without trailing zeros (4.500 -> 4.5, 5.000 -> 5)
func formatTrimmed(thousandths int) string {
	s := strings.TrimRight(formatFixed(thousandths, PlaceThousandths), "0")
	return strings.TrimSuffix(s, ".")
}
