package problem

// Category selects the math skill a session drills
type Category uint8

const (
	CategoryNone Category = iota // Not selected yet
	CategoryImproperProper
	CategoryEquivalent
	CategoryRounding
	CategoryPercentages
)

// Categories lists the selectable categories in menu order
var Categories = [...]Category{
	CategoryImproperProper,
	CategoryEquivalent,
	CategoryRounding,
	CategoryPercentages,
}

var categoryNames = map[Category]string{
	CategoryNone:           "None",
	CategoryImproperProper: "Improper/Proper Fractions",
	CategoryEquivalent:     "Equivalent Fractions",
	CategoryRounding:       "Rounding Decimals",
	CategoryPercentages:    "Percentages",
}

// String returns the menu label
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether c is one of the selectable categories
func (c Category) Valid() bool {
	return c >= CategoryImproperProper && c <= CategoryPercentages
}
