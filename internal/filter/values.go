package filter

import (
	"sort"

	"geoquiz/internal/country"
)

// LocationValues returns the distinct non-empty values of a location field
// across the dataset, sorted. These are the choices offered when building a
// location filter.
func LocationValues(dataset []country.Country, field LocationField) []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, record := range dataset {
		value := PlaceValue(record, field)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
