package answer

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SI magnitude prefixes for successive powers of 1000, from 10^-3 down to
// 10^-30 and from 10^3 up to 10^30.
var (
	negPrefixes = []rune("mμnpfazyrq")
	posPrefixes = []rune("kMGTPEZYRQ")
)

// Exponent returns the floor base-10 exponent of |v|. Zero maps to -Inf and
// an infinite input to +Inf so FormatScaled can detect the fallback cases.
func Exponent(v float64) float64 {
	v = math.Abs(v)
	if math.IsInf(v, 1) {
		return math.Inf(1)
	}
	if v == 0 {
		return math.Inf(-1)
	}
	if math.IsNaN(v) {
		return math.NaN()
	}
	e := int(math.Floor(math.Log10(v)))
	// Log10 drifts by one at power-of-ten boundaries.
	for v < math.Pow(10, float64(e)) {
		e--
	}
	for v >= math.Pow(10, float64(e+1)) {
		e++
	}
	return float64(e)
}

// FormatScaled renders v rounded to two significant digits and scaled by the
// nearest power of 1000, with a single-rune SI suffix: 357022 becomes "360k".
// A whole number at the chosen scale renders as an integer, otherwise with
// exactly one decimal place. Magnitudes outside the prefix tables, zero, and
// non-finite values fall back to the plain literal.
func FormatScaled(v float64) string {
	literal := formatLiteral(v)
	e := Exponent(v)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return literal
	}
	bucket := floorDiv(int(e), 3)
	rem := int(e) - 3*bucket
	scaled := roundTo(v*math.Pow(10, float64(-3*bucket)), 1-rem)
	var rendered string
	if rem > 0 {
		rendered = strconv.FormatFloat(scaled, 'f', 0, 64)
	} else {
		rendered = strconv.FormatFloat(scaled, 'f', 1, 64)
	}
	if bucket == 0 {
		return rendered
	}
	prefixes := posPrefixes
	if bucket < 0 {
		prefixes = negPrefixes
	}
	idx := bucket
	if idx < 0 {
		idx = -idx
	}
	idx--
	if idx >= len(prefixes) {
		return literal
	}
	return rendered + string(prefixes[idx])
}

// ExpandScaled is the inverse direction: a trailing SI suffix is replaced by
// its power-of-ten exponent, the result is parsed, and the value is
// re-canonicalized through FormatScaled, so "357k" and "357000" both come out
// as "360k". Input that does not parse as a number is returned unchanged.
func ExpandScaled(s string) string {
	expanded := s
	if last, size := utf8.DecodeLastRuneInString(s); size > 0 {
		if i := runeIndex(negPrefixes, last); i >= 0 {
			expanded = s[:len(s)-size] + "e-" + strconv.Itoa(3*(i+1))
		} else if i := runeIndex(posPrefixes, last); i >= 0 {
			expanded = s[:len(s)-size] + "e+" + strconv.Itoa(3*(i+1))
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(expanded), 64)
	if err != nil {
		return s
	}
	return FormatScaled(v)
}

// formatLiteral renders the unscaled fallback form of v.
func formatLiteral(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// floorDiv divides with the quotient rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// roundTo rounds v to the given number of decimal places; a negative count
// rounds to tens, hundreds, and so on.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func runeIndex(set []rune, r rune) int {
	for i, candidate := range set {
		if candidate == r {
			return i
		}
	}
	return -1
}
