package quiz

import (
	"sort"

	"geoquiz/internal/answer"
	"geoquiz/internal/country"
	"geoquiz/internal/filter"
)

// Direction selects which side of a pair is shown as the question.
type Direction string

const (
	// TopicFromCountry shows a country name and asks for the topic value.
	TopicFromCountry Direction = "topic-from-country"
	// CountryFromTopic shows a topic value and asks for the country name.
	CountryFromTopic Direction = "country-from-topic"
)

func (d Direction) asksTopic() bool { return d == TopicFromCountry }

// Pair is one question/answer combination. Both sides are display strings;
// multi-valued sides are joined in canonical order and an empty value is
// the placeholder.
type Pair struct {
	Question string
	Answer   string
}

// Derived is the pair list for a session plus the topic behavior the
// engine needs at display and comparison time.
type Derived struct {
	Topic     Topic
	Direction Direction
	Pairs     []Pair

	// Label is the topic text used in question heads.
	Label string
	// Conjunction joins "country" with a shown value.
	Conjunction string
	// MultiValued marks topics whose answer is a set of atomic values.
	MultiValued bool

	adjust func(string) string
}

// Derive builds the question/answer pairs for a topic, direction, and name
// variant over every record the condition keeps. Pairs follow dataset
// order; shuffling is the engine's concern.
func Derive(dataset []country.Country, topic Topic, direction Direction, variant country.NameVariant, cond filter.Condition) Derived {
	b := behaviorFor(topic)
	names := make(map[string]string, len(dataset))
	for _, record := range dataset {
		names[record.CCA3] = record.Name.Common
	}
	derived := Derived{
		Topic:       topic,
		Direction:   direction,
		Label:       b.label,
		Conjunction: b.conjunction,
		MultiValued: b.multiValued,
		adjust:      b.adjust,
	}
	for _, record := range dataset {
		if !cond.Matches(record) || !b.include(record) {
			continue
		}
		value := b.extract(record, names)
		if value == "" {
			value = answer.None
		}
		name := record.DisplayName(variant)
		if direction.asksTopic() {
			derived.Pairs = append(derived.Pairs, Pair{Question: name, Answer: value})
		} else {
			derived.Pairs = append(derived.Pairs, Pair{Question: value, Answer: name})
		}
	}
	return derived
}

// Adjust canonicalizes a free-text answer under the topic's rules.
func (d Derived) Adjust(s string) string { return d.adjust(s) }

// UniqueAnswers returns the distinct answer values in sorted order.
func (d Derived) UniqueAnswers() []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, pair := range d.Pairs {
		if _, ok := seen[pair.Answer]; ok {
			continue
		}
		seen[pair.Answer] = struct{}{}
		values = append(values, pair.Answer)
	}
	sort.Strings(values)
	return values
}

// DistinctQuestions reports whether no two pairs share a question label.
// Duplicate labels arise when several countries map to the same value, as
// with regions; they rule out free-text answers and the fixed option list.
func (d Derived) DistinctQuestions() bool {
	seen := map[string]struct{}{}
	for _, pair := range d.Pairs {
		if _, ok := seen[pair.Question]; ok {
			return false
		}
		seen[pair.Question] = struct{}{}
	}
	return true
}

// Head renders the prompt head for a pair's question side.
func (d Derived) Head(question string) string {
	if d.Direction.asksTopic() {
		return d.Label + " of " + question
	}
	return "country " + d.Conjunction + " " + question
}
