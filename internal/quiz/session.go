package quiz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"geoquiz/internal/answer"
)

// ErrNotEnoughAnswers reports that fewer than two distinct answer values
// survived filtering, so no meaningful question can be asked.
var ErrNotEnoughAnswers = errors.New("Not enough possible answer options")

// Session is the quiz engine state: the derived pairs, which of them have
// been answered, and the running mistake count. It is not safe for
// concurrent use.
type Session struct {
	id      string
	derived Derived
	mode    Mode
	count   int
	fixed   []string

	answered []bool
	left     int
	mistakes int
	rng      Rand
}

// NewSession validates the derived pairs and the requested option count
// and builds the engine state. Count 0 selects free-text answers.
func NewSession(d Derived, count int, rng Rand) (*Session, error) {
	unique := d.UniqueAnswers()
	if len(unique) < 2 {
		return nil, ErrNotEnoughAnswers
	}
	lower, upper, extras := OptionBounds(d)
	if !intAllowed(count, lower, upper, extras) {
		return nil, fmt.Errorf("option count must be %d..%d, got %d", lower, upper, count)
	}
	s := &Session{
		id:       uuid.NewString(),
		derived:  d,
		mode:     ModeFor(d, count),
		count:    count,
		answered: make([]bool, len(d.Pairs)),
		left:     len(d.Pairs),
		rng:      rng,
	}
	if s.mode == ModeExact {
		s.fixed = unique
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Total returns the number of questions the session started with.
func (s *Session) Total() int { return len(s.derived.Pairs) }

// Remaining returns the number of unanswered questions.
func (s *Session) Remaining() int { return s.left }

// Mistakes returns the number of wrong answers so far.
func (s *Session) Mistakes() int { return s.mistakes }

// Mode returns the presentation mode the session runs in.
func (s *Session) Mode() Mode { return s.mode }

// Finished reports whether every question has been answered.
func (s *Session) Finished() bool { return s.left == 0 }

// Round is one drawn question, ready to present.
type Round struct {
	// Head is the question text without its trailing colon.
	Head string
	// Options is the answer list to show, nil in free-text mode.
	Options []string
	// Multiple reports whether a comma-separated selection is accepted.
	Multiple bool

	id       int
	accepted map[int]string
}

// Draw picks an unanswered question uniformly at random and builds its
// round. It must not be called on a finished session.
func (s *Session) Draw() Round {
	nth := s.rng.Intn(s.left)
	id := -1
	for i := range s.derived.Pairs {
		if s.answered[i] {
			continue
		}
		if nth == 0 {
			id = i
			break
		}
		nth--
	}
	pair := s.derived.Pairs[id]
	round := Round{
		Head:     s.derived.Head(pair.Question),
		id:       id,
		accepted: map[int]string{id: pair.Answer},
	}
	switch s.mode {
	case ModeFree:
		round.Multiple = s.derived.Direction.asksTopic() && s.derived.MultiValued
	case ModeExact:
		round.Options = s.fixed
	case ModeVariable:
		s.sampleOptions(&round)
	}
	return round
}

// sampleOptions fills a round's option set: the drawn pair's answer plus
// random draws from the answer pool. A draw belonging to a different
// question is a distractor. One belonging to the same question folds into
// the accepted answer set when the round takes multiple answers, which is
// the case when countries are the answers: several countries can share
// the shown value.
func (s *Session) sampleOptions(round *Round) {
	multiAnswer := !s.derived.Direction.asksTopic()
	round.Multiple = multiAnswer
	pairs := s.derived.Pairs
	question := pairs[round.id].Question
	chosen := map[string]struct{}{pairs[round.id].Answer: {}}
	// The target can sit below the requested size: when the drawn
	// question's label repeats and answers cannot fold in, that label's
	// other values are unsampleable and must not be waited for.
	reachable := map[string]struct{}{pairs[round.id].Answer: {}}
	for i := range pairs {
		if pairs[i].Question != question || multiAnswer {
			reachable[pairs[i].Answer] = struct{}{}
		}
	}
	target := s.count
	if len(reachable) < target {
		target = len(reachable)
	}
	for len(chosen) < target {
		idx := s.rng.Intn(len(pairs))
		option := pairs[idx].Answer
		if _, ok := chosen[option]; ok {
			continue
		}
		if pairs[idx].Question != question {
			chosen[option] = struct{}{}
		} else if multiAnswer {
			round.accepted[idx] = option
			chosen[option] = struct{}{}
		}
	}
	options := make([]string, 0, len(chosen))
	for option := range chosen {
		options = append(options, option)
	}
	sort.Strings(options)
	round.Options = options
}

// Outcome reports the result of one submitted answer.
type Outcome struct {
	Correct bool
	// Reveal is the expected answer, set when the submission was wrong.
	Reveal string
	// Answered and Total give the progress after the submission.
	Answered int
	Total    int
	Done     bool
}

// Expected returns the canonical answer string of a round: every accepted
// value joined in canonical order.
func (r Round) Expected() string {
	values := make([]string, 0, len(r.accepted))
	for _, value := range r.accepted {
		values = append(values, value)
	}
	return answer.Join(values)
}

// Submit compares a submitted answer against the round and advances the
// session. A correct answer retires every pair the round accepted.
func (s *Session) Submit(round Round, submitted string) Outcome {
	expected := round.Expected()
	adjust := s.comparison()
	if adjust(submitted) == adjust(expected) {
		for id := range round.accepted {
			if !s.answered[id] {
				s.answered[id] = true
				s.left--
			}
		}
		return Outcome{
			Correct:  true,
			Answered: s.Total() - s.left,
			Total:    s.Total(),
			Done:     s.left == 0,
		}
	}
	s.mistakes++
	return Outcome{
		Reveal:   expected,
		Answered: s.Total() - s.left,
		Total:    s.Total(),
	}
}

// comparison returns the canonicalization applied to both sides before
// comparing. Indexed selections reproduce option strings exactly, so only
// free-text answers are adjusted.
func (s *Session) comparison() func(string) string {
	if s.mode == ModeFree {
		return s.derived.adjust
	}
	return func(v string) string { return v }
}
