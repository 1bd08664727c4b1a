package stockfolio

import "fmt"

// Percent is a display-oriented percentage, e.g. a position's return.
type Percent float64

// Equal compares with a fixed tolerance; percentages come out of divisions
// and are never meant to be compared bit for bit.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders with an explicit sign, and a bare "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
