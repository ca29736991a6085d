package answer

import (
	"sort"
	"strings"
)

const (
	// Delim separates answer tokens in user input and in joined answer sets.
	Delim = ","
	// None stands in for an empty sourced value; it never equals real data.
	None = "-"
)

// Join renders a value set in canonical display order: deduplicated, sorted,
// joined with ", ".
func Join(values []string) string {
	unique := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Strings(unique)
	return strings.Join(unique, Delim+" ")
}

// SplitTokens breaks a submitted line into trimmed answer tokens. Multi-token
// submissions are only honored when multiple is set; otherwise the whole line
// is a single token.
func SplitTokens(line string, multiple bool) []string {
	if !multiple {
		return []string{line}
	}
	parts := strings.Split(line, Delim)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
