package config

import (
	"fmt"
	"strings"

	"geoquiz/internal/country"
	"geoquiz/internal/filter"
	"geoquiz/internal/quiz"
)

// Issue captures a validation problem with a preset field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates preset validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "preset validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized preset for correctness. Bounds that depend
// on the dataset, like the option count ceiling, are checked when the
// session is built.
func Validate(preset *Preset) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if preset.Version == 0 {
		add("version", "is required")
	} else if preset.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", preset.Version))
	}

	if preset.Topic == "" {
		add("topic", "is required")
	} else if _, ok := quiz.TopicNamed(preset.Topic); !ok {
		add("topic", fmt.Sprintf("unknown topic %q", preset.Topic))
	}

	switch preset.Direction {
	case "":
		add("direction", "is required")
	case string(quiz.TopicFromCountry), string(quiz.CountryFromTopic):
	default:
		add("direction", fmt.Sprintf("must be %q or %q", quiz.TopicFromCountry, quiz.CountryFromTopic))
	}

	switch preset.Names {
	case "":
		add("names", "is required")
	case string(country.NameCommon), string(country.NameOfficial):
	default:
		add("names", fmt.Sprintf("must be %q or %q", country.NameCommon, country.NameOfficial))
	}

	if preset.Options == nil {
		add("options", "is required")
	} else if *preset.Options < 0 {
		add("options", "must not be negative")
	}

	switch preset.Filters.Size {
	case "", string(filter.SizeBig), string(filter.SizeLarge), string(filter.SizeSmall):
	default:
		add("filters.size", fmt.Sprintf("must be %q, %q, or %q",
			filter.SizeBig, filter.SizeLarge, filter.SizeSmall))
	}

	if location := preset.Filters.Location; location != nil {
		switch location.Field {
		case string(filter.FieldRegion), string(filter.FieldSubregion):
		default:
			add("filters.location.field", fmt.Sprintf("must be %q or %q",
				filter.FieldRegion, filter.FieldSubregion))
		}
		if len(location.Places) == 0 {
			add("filters.location.places", "at least one place is required")
		}
		for i, place := range location.Places {
			if place == "" {
				add(fmt.Sprintf("filters.location.places[%d]", i), "must not be blank")
			}
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
