package config

import (
	"geoquiz/internal/country"
	"geoquiz/internal/filter"
	"geoquiz/internal/quiz"
)

// QuizTopic returns the topic of a validated preset.
func (p Preset) QuizTopic() quiz.Topic {
	topic, _ := quiz.TopicNamed(p.Topic)
	return topic
}

// QuizDirection returns the question direction of a validated preset.
func (p Preset) QuizDirection() quiz.Direction {
	return quiz.Direction(p.Direction)
}

// NameVariant returns the country name variant of a validated preset.
func (p Preset) NameVariant() country.NameVariant {
	return country.NameVariant(p.Names)
}

// Condition assembles the preset's filters in a fixed order. Absent
// filters contribute nothing.
func (p Preset) Condition() filter.Condition {
	var cond filter.Condition
	if p.Filters.Independent != nil {
		cond = append(cond, filter.Independence(*p.Filters.Independent))
	}
	if location := p.Filters.Location; location != nil {
		cond = append(cond, filter.Location(filter.LocationField(location.Field), location.Places))
	}
	if p.Filters.Size != "" {
		cond = append(cond, filter.Size(filter.SizeClass(p.Filters.Size)))
	}
	if p.Filters.Island != nil {
		cond = append(cond, filter.Island(*p.Filters.Island))
	}
	return cond
}
