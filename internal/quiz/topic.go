package quiz

import (
	"geoquiz/internal/answer"
	"geoquiz/internal/country"
)

// Topic identifies the country attribute a session quizzes on.
type Topic string

const (
	TopicCapital   Topic = "capital"
	TopicFlag      Topic = "flag"
	TopicLanguages Topic = "languages"
	TopicCCA2      Topic = "two-letter code"
	TopicCCA3      Topic = "three-letter code"
	TopicRegion    Topic = "region"
	TopicSubregion Topic = "subregion"
	TopicBorders   Topic = "borders"
	TopicArea      Topic = "area"
)

// Topics lists the quizzable topics in menu order.
var Topics = []Topic{
	TopicCapital,
	TopicFlag,
	TopicLanguages,
	TopicCCA2,
	TopicCCA3,
	TopicRegion,
	TopicSubregion,
	TopicBorders,
	TopicArea,
}

// TopicNamed maps a topic name back to its Topic, reporting whether the
// name is known.
func TopicNamed(name string) (Topic, bool) {
	for _, topic := range Topics {
		if string(topic) == name {
			return topic, true
		}
	}
	return "", false
}

// behavior bundles the per-topic operations as explicit fields: how a value
// is read off a record, which records take part, and how answers are
// canonicalized before free-text comparison.
type behavior struct {
	// label is the topic text used in question heads. It differs from the
	// topic name only where the bare name would be ambiguous on screen.
	label string

	// conjunction joins "country" with a value when the question names the
	// value, as in "country bordering France".
	conjunction string

	// multiValued marks topics whose answer is a set of atomic values.
	multiValued bool

	include func(country.Country) bool

	// extract renders the record's value. names maps cca3 codes to common
	// names and is only read by the borders topic.
	extract func(record country.Country, names map[string]string) string

	// adjust canonicalizes a free-text answer before comparison.
	adjust func(string) string
}

func behaviorFor(topic Topic) behavior {
	b := behavior{
		label:       string(topic),
		conjunction: "with",
		include:     func(country.Country) bool { return true },
		adjust:      answer.Normalize,
	}
	switch topic {
	case TopicCapital:
		b.multiValued = true
		b.include = func(c country.Country) bool { return len(c.Capital) > 0 }
		b.extract = func(c country.Country, _ map[string]string) string {
			return answer.Join(c.Capital)
		}
	case TopicFlag:
		b.include = func(c country.Country) bool { return c.Flag != "" }
		b.extract = func(c country.Country, _ map[string]string) string { return c.Flag }
	case TopicLanguages:
		b.multiValued = true
		b.conjunction = "speaking"
		b.include = func(c country.Country) bool { return len(c.Languages) > 0 }
		b.extract = func(c country.Country, _ map[string]string) string {
			names := make([]string, 0, len(c.Languages))
			for _, name := range c.Languages {
				names = append(names, name)
			}
			return answer.Join(names)
		}
	case TopicCCA2:
		b.conjunction = "abbreviated as"
		b.include = func(c country.Country) bool { return c.CCA2 != "" }
		b.extract = func(c country.Country, _ map[string]string) string { return c.CCA2 }
	case TopicCCA3:
		b.conjunction = "abbreviated as"
		b.include = func(c country.Country) bool { return c.CCA3 != "" }
		b.extract = func(c country.Country, _ map[string]string) string { return c.CCA3 }
	case TopicRegion:
		b.conjunction = "in"
		b.include = func(c country.Country) bool { return c.Region != "" }
		b.extract = func(c country.Country, _ map[string]string) string { return c.Region }
	case TopicSubregion:
		b.conjunction = "in"
		b.include = func(c country.Country) bool { return c.Subregion != "" }
		b.extract = func(c country.Country, _ map[string]string) string { return c.Subregion }
	case TopicBorders:
		b.multiValued = true
		b.conjunction = "bordering"
		b.extract = func(c country.Country, names map[string]string) string {
			resolved := make([]string, 0, len(c.Borders))
			for _, code := range c.Borders {
				if name, ok := names[code]; ok {
					resolved = append(resolved, name)
				} else {
					// Partial datasets may border records that were
					// filtered out of the file; fall back to the code.
					resolved = append(resolved, code)
				}
			}
			return answer.Join(resolved)
		}
	case TopicArea:
		b.label = "area (in km²)"
		b.include = func(c country.Country) bool { return c.Area >= 0 }
		b.extract = func(c country.Country, _ map[string]string) string {
			return answer.FormatScaled(c.Area)
		}
		b.adjust = answer.ExpandScaled
	}
	return b
}
