package cli

import (
	"strings"

	"geoquiz/internal/country"
	"geoquiz/internal/filter"
	"geoquiz/internal/quiz"
)

// banner is printed before the interactive prompts. It states the input
// grammar once so the prompts themselves can stay short.
const banner = `
Info:
* Empty input ends the session.
* If options are given, the indices of options are accepted as answers.
* Multiple answers to a question separated by ',' are possible.
* Single-choice questions are denoted with parentheses.
* Multiple-choice questions are denoted with brackets.
* Country data source: ` + "`https://github.com/mledoze/countries`" + `.
* Areas are rounded to two significant digits.`

// sessionPlan is what configuration produces: the derived pairs and the
// validated option count for the session.
type sessionPlan struct {
	derived quiz.Derived
	count   int
}

// configure walks the learner through the session choices: topic,
// direction, name variant, optional limiting conditions, and the option
// count, in that order. Empty input at any prompt surfaces as
// quiz.ErrEndOfSession.
func configure(c quiz.Console, dataset []country.Country) (sessionPlan, error) {
	c.Print(banner)

	topicNames := make([]string, len(quiz.Topics))
	for i, topic := range quiz.Topics {
		topicNames[i] = string(topic)
	}
	chosen, err := quiz.AskSelection(c, "topic", topicNames, false)
	if err != nil {
		return sessionPlan{}, err
	}
	topic, _ := quiz.TopicNamed(chosen[0])

	directions := []string{
		"country -> " + chosen[0],
		"country <- " + chosen[0],
	}
	chosen, err = quiz.AskSelection(c, "direction", directions, false)
	if err != nil {
		return sessionPlan{}, err
	}
	direction := quiz.CountryFromTopic
	if strings.Contains(chosen[0], "->") {
		direction = quiz.TopicFromCountry
	}

	chosen, err = quiz.AskSelection(c, "country names",
		[]string{string(country.NameCommon), string(country.NameOfficial)}, false)
	if err != nil {
		return sessionPlan{}, err
	}
	variant := country.NameVariant(chosen[0])

	chosen, err = quiz.AskSelection(c, "limit questions", []string{"no", "yes"}, false)
	if err != nil {
		return sessionPlan{}, err
	}
	var cond filter.Condition
	if chosen[0] == "yes" {
		cond, err = askCondition(c, dataset)
		if err != nil {
			return sessionPlan{}, err
		}
	}

	derived := quiz.Derive(dataset, topic, direction, variant, cond)
	if len(derived.UniqueAnswers()) < 2 {
		return sessionPlan{}, quiz.ErrNotEnoughAnswers
	}

	lower, upper, extras := quiz.OptionBounds(derived)
	count, err := quiz.AskInt(c, "number of options", lower, upper, extras)
	if err != nil {
		return sessionPlan{}, err
	}
	return sessionPlan{derived: derived, count: count}, nil
}

// askCondition collects the limiting conditions. Whatever order the kinds
// were picked in, the sub-prompts run in a fixed order and each condition
// reads only its own choice.
func askCondition(c quiz.Console, dataset []country.Country) (filter.Condition, error) {
	kinds, err := quiz.AskSelection(c, "limiting conditions",
		[]string{"independence", "location", "size", "island or not"}, true)
	if err != nil {
		return nil, err
	}
	picked := map[string]bool{}
	for _, kind := range kinds {
		picked[kind] = true
	}

	var cond filter.Condition
	if picked["independence"] {
		chosen, err := quiz.AskSelection(c, "independent", []string{"yes", "no"}, false)
		if err != nil {
			return nil, err
		}
		cond = append(cond, filter.Independence(chosen[0] == "yes"))
	}
	if picked["location"] {
		chosen, err := quiz.AskSelection(c, "location",
			[]string{string(filter.FieldRegion), string(filter.FieldSubregion)}, false)
		if err != nil {
			return nil, err
		}
		field := filter.LocationField(chosen[0])
		places, err := quiz.AskSelection(c, chosen[0], filter.LocationValues(dataset, field), true)
		if err != nil {
			return nil, err
		}
		cond = append(cond, filter.Location(field, places))
	}
	if picked["size"] {
		chosen, err := quiz.AskSelection(c, "size",
			[]string{"big (> 10k km²)", "large (> 1M km²)", "small (< 10k km²)"}, false)
		if err != nil {
			return nil, err
		}
		var class filter.SizeClass
		switch {
		case strings.HasPrefix(chosen[0], "big"):
			class = filter.SizeBig
		case strings.HasPrefix(chosen[0], "large"):
			class = filter.SizeLarge
		default:
			class = filter.SizeSmall
		}
		cond = append(cond, filter.Size(class))
	}
	if picked["island or not"] {
		chosen, err := quiz.AskSelection(c, "island", []string{"no", "yes"}, false)
		if err != nil {
			return nil, err
		}
		cond = append(cond, filter.Island(chosen[0] == "yes"))
	}
	return cond, nil
}
