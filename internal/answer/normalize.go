package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds free text into its canonical comparable form: the string is
// decomposed, non-spacing combining marks are stripped, the result is
// lowercased, and runs of spaces collapse to a single space. Idempotent, so
// accented input matches unaccented stored forms and vice versa.
func Normalize(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return collapseSpaces(strings.ToLower(folded))
}

// collapseSpaces reduces every run of spaces to one space. The ends are left
// alone; inputs are trimmed before they get here.
func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if r == ' ' {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	if pendingSpace {
		b.WriteByte(' ')
	}
	return b.String()
}
