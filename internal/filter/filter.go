// Package filter narrows a country dataset with composable record
// predicates before questions are derived from it.
package filter

import (
	"geoquiz/internal/country"
)

// Kind tags the supported filter variants.
type Kind string

const (
	KindIndependence Kind = "independence"
	KindLocation     Kind = "location"
	KindSize         Kind = "size"
	KindIsland       Kind = "island"
)

// LocationField selects which place field a location filter matches on.
type LocationField string

const (
	FieldRegion    LocationField = "region"
	FieldSubregion LocationField = "subregion"
)

// SizeClass buckets countries by area in km².
type SizeClass string

const (
	// SizeBig matches areas of at least 10^4 km².
	SizeBig SizeClass = "big"
	// SizeLarge matches areas of at least 10^6 km².
	SizeLarge SizeClass = "large"
	// SizeSmall matches areas under 10^4 km².
	SizeSmall SizeClass = "small"
)

const (
	bigThreshold   = 1e4
	largeThreshold = 1e6
)

// Filter is one tagged predicate variant over a country record. Only the
// fields of the active kind are read, so no variant can pick up another
// variant's settings.
type Filter struct {
	Kind Kind

	// KindIndependence: the required value of the independence flag.
	Independent bool

	// KindLocation: the field matched and the accepted values of it.
	Field  LocationField
	Places []string

	// KindSize: the required size class.
	Size SizeClass

	// KindIsland: true keeps islands, false keeps everything else. A
	// record counts as an island when it has no land borders.
	Island bool
}

// Independence returns a filter on the independence flag.
func Independence(independent bool) Filter {
	return Filter{Kind: KindIndependence, Independent: independent}
}

// Location returns a filter keeping records whose field value is among the
// given places.
func Location(field LocationField, places []string) Filter {
	return Filter{Kind: KindLocation, Field: field, Places: places}
}

// Size returns a filter on the area size class.
func Size(class SizeClass) Filter {
	return Filter{Kind: KindSize, Size: class}
}

// Island returns a filter keeping islands, or mainland records when
// island is false.
func Island(island bool) Filter {
	return Filter{Kind: KindIsland, Island: island}
}

// Matches reports whether a record satisfies the filter.
func (f Filter) Matches(record country.Country) bool {
	switch f.Kind {
	case KindIndependence:
		return record.Independent == f.Independent
	case KindLocation:
		value := PlaceValue(record, f.Field)
		for _, place := range f.Places {
			if place == value {
				return true
			}
		}
		return false
	case KindSize:
		switch f.Size {
		case SizeBig:
			return record.Area >= bigThreshold
		case SizeLarge:
			return record.Area >= largeThreshold
		case SizeSmall:
			return record.Area < bigThreshold
		}
		return true
	case KindIsland:
		return (len(record.Borders) == 0) == f.Island
	}
	return true
}

// Condition is the AND-composition of filters. An empty condition keeps
// every record.
type Condition []Filter

// Matches reports whether a record satisfies every filter of the condition.
func (c Condition) Matches(record country.Country) bool {
	for _, f := range c {
		if !f.Matches(record) {
			return false
		}
	}
	return true
}

// PlaceValue reads the location field a filter matches on.
func PlaceValue(record country.Country, field LocationField) string {
	if field == FieldSubregion {
		return record.Subregion
	}
	return record.Region
}
