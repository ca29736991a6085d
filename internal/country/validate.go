package country

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a dataset record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more dataset validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("dataset validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks the schema constraints the quiz core relies on.
func Validate(countries []Country) error {
	collector := &issueCollector{}
	if len(countries) == 0 {
		collector.add("countries", "must include at least one record")
	}
	seenCodes := map[string]int{}
	seenNames := map[string]int{}
	for i, record := range countries {
		prefix := fmt.Sprintf("countries[%d]", i)
		if strings.TrimSpace(record.Name.Common) == "" {
			collector.add(prefix+".name.common", "is required")
		} else if first, exists := seenNames[record.Name.Common]; exists {
			// Duplicate names would make two questions indistinguishable.
			collector.add(prefix+".name.common", fmt.Sprintf("duplicate name %q (first used by countries[%d])", record.Name.Common, first))
		} else {
			seenNames[record.Name.Common] = i
		}
		if strings.TrimSpace(record.Name.Official) == "" {
			collector.add(prefix+".name.official", "is required")
		}
		if len(record.CCA2) != 2 {
			collector.add(prefix+".cca2", fmt.Sprintf("expected a two-letter code, got %q", record.CCA2))
		}
		if len(record.CCA3) != 3 {
			collector.add(prefix+".cca3", fmt.Sprintf("expected a three-letter code, got %q", record.CCA3))
		} else if first, exists := seenCodes[record.CCA3]; exists {
			collector.add(prefix+".cca3", fmt.Sprintf("duplicate code %q (first used by countries[%d])", record.CCA3, first))
		} else {
			seenCodes[record.CCA3] = i
		}
		for j, capital := range record.Capital {
			if strings.TrimSpace(capital) == "" {
				collector.add(fmt.Sprintf("%s.capital[%d]", prefix, j), "must not be blank")
			}
		}
		for code, name := range record.Languages {
			if strings.TrimSpace(name) == "" {
				collector.add(fmt.Sprintf("%s.languages.%s", prefix, code), "must not be blank")
			}
		}
		for j, border := range record.Borders {
			if len(border) != 3 {
				collector.add(fmt.Sprintf("%s.borders[%d]", prefix, j), fmt.Sprintf("expected a three-letter code, got %q", border))
			}
		}
		if record.Area < 0 {
			collector.add(prefix+".area", "must not be negative")
		}
	}
	return collector.result()
}
