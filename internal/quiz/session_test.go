package quiz

import (
	"errors"
	"reflect"
	"testing"

	"geoquiz/internal/country"
	"geoquiz/internal/testutil"
)

func capitalQuiz(t *testing.T, count int, rng Rand) *Session {
	t.Helper()
	d := Derive(testDataset(), TopicCapital, TopicFromCountry, country.NameCommon, nil)
	s, err := NewSession(d, count, rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

// TestNewSessionNotEnoughAnswers checks that a pair set with fewer than
// two distinct answers is rejected.
func TestNewSessionNotEnoughAnswers(t *testing.T) {
	d := Derive(testDataset(), TopicSubregion, TopicFromCountry, country.NameCommon, nil)
	if _, err := NewSession(d, 0, testutil.NewFakeRand()); !errors.Is(err, ErrNotEnoughAnswers) {
		t.Fatalf("expected ErrNotEnoughAnswers, got %v", err)
	}
}

// TestNewSessionRejectsBadCounts checks the option-count bounds, including
// that free text is refused when question labels repeat.
func TestNewSessionRejectsBadCounts(t *testing.T) {
	d := Derive(testDataset(), TopicCapital, TopicFromCountry, country.NameCommon, nil)
	for _, count := range []int{1, 4, -1} {
		if _, err := NewSession(d, count, testutil.NewFakeRand()); err == nil {
			t.Fatalf("count %d should be rejected", count)
		}
	}
	if _, err := NewSession(d, 0, testutil.NewFakeRand()); err != nil {
		t.Fatalf("free text should be allowed for distinct questions: %v", err)
	}

	duplicated := Derive(testDataset(), TopicSubregion, CountryFromTopic, country.NameCommon, nil)
	if _, err := NewSession(duplicated, 0, testutil.NewFakeRand()); err == nil {
		t.Fatalf("free text should be refused when question labels repeat")
	}
	if _, err := NewSession(duplicated, 2, testutil.NewFakeRand()); err != nil {
		t.Fatalf("indexed options should still work: %v", err)
	}
}

// TestModeResolution checks the mapping from option count to presentation
// mode.
func TestModeResolution(t *testing.T) {
	if got := capitalQuiz(t, 0, testutil.NewFakeRand()).Mode(); got != ModeFree {
		t.Fatalf("count 0: got mode %v", got)
	}
	if got := capitalQuiz(t, 3, testutil.NewFakeRand()).Mode(); got != ModeExact {
		t.Fatalf("count equal to answers: got mode %v", got)
	}
	if got := capitalQuiz(t, 2, testutil.NewFakeRand()).Mode(); got != ModeVariable {
		t.Fatalf("count below answers: got mode %v", got)
	}

	duplicated := Derive(testDataset(), TopicSubregion, CountryFromTopic, country.NameCommon, nil)
	s, err := NewSession(duplicated, 3, testutil.NewFakeRand())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Mode() != ModeVariable {
		t.Fatalf("duplicate labels should force variable mode, got %v", s.Mode())
	}
}

// TestDrawSkipsAnswered checks that retired questions are never drawn
// again and that the head carries the topic label.
func TestDrawSkipsAnswered(t *testing.T) {
	s := capitalQuiz(t, 0, testutil.NewFakeRand(0))
	seen := []string{}
	for !s.Finished() {
		round := s.Draw()
		seen = append(seen, round.Head)
		outcome := s.Submit(round, round.Expected())
		if !outcome.Correct {
			t.Fatalf("expected answer should be correct for %q", round.Head)
		}
	}
	want := []string{"capital of Iceland", "capital of Ireland", "capital of United Kingdom"}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("draw order: got %v", seen)
	}
}

// TestExactModeOptions checks that every round shows the same full option
// list and takes a single index.
func TestExactModeOptions(t *testing.T) {
	s := capitalQuiz(t, 3, testutil.NewFakeRand(0))
	want := []string{"Dublin", "London", "Reykjavik"}
	for !s.Finished() {
		round := s.Draw()
		if !reflect.DeepEqual(round.Options, want) {
			t.Fatalf("exact options: got %v", round.Options)
		}
		if round.Multiple {
			t.Fatalf("exact mode takes a single selection")
		}
		s.Submit(round, round.Expected())
	}
}

// TestVariableModeDistractors checks option sampling when the drawn
// question's labels are distinct: other answers fill the list.
func TestVariableModeDistractors(t *testing.T) {
	// Draws: question pick 0, then pool picks 1 and 2.
	s := capitalQuiz(t, 2, testutil.NewFakeRand(0, 1))
	round := s.Draw()
	if round.Head != "capital of Iceland" {
		t.Fatalf("drawn question: got %q", round.Head)
	}
	if !reflect.DeepEqual(round.Options, []string{"Dublin", "Reykjavik"}) {
		t.Fatalf("sampled options: got %v", round.Options)
	}
	if round.Multiple {
		t.Fatalf("country questions with distinct labels take one answer")
	}
	if round.Expected() != "Reykjavik" {
		t.Fatalf("expected answer: got %q", round.Expected())
	}
}

// TestVariableModeFoldsSharedQuestions checks that sampling a pair with
// the same shown value folds its answer into the accepted set and that a
// correct answer retires every folded pair.
func TestVariableModeFoldsSharedQuestions(t *testing.T) {
	d := Derive(testDataset(), TopicSubregion, CountryFromTopic, country.NameCommon, nil)
	s, err := NewSession(d, 2, testutil.NewFakeRand(0, 1))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	round := s.Draw()
	if round.Head != "country in Northern Europe" {
		t.Fatalf("drawn question: got %q", round.Head)
	}
	if !round.Multiple {
		t.Fatalf("country answers accept multiple selections")
	}
	if !reflect.DeepEqual(round.Options, []string{"Iceland", "Ireland"}) {
		t.Fatalf("options: got %v", round.Options)
	}
	if round.Expected() != "Iceland, Ireland" {
		t.Fatalf("folded answer set: got %q", round.Expected())
	}
	outcome := s.Submit(round, "Iceland, Ireland")
	if !outcome.Correct || outcome.Done {
		t.Fatalf("folded answer outcome: %+v", outcome)
	}
	if s.Remaining() != 1 {
		t.Fatalf("both folded pairs should retire, %d left", s.Remaining())
	}

	// The last pair folds an already retired value back in; selecting it
	// again must win the round without double-counting progress.
	round = s.Draw()
	if !reflect.DeepEqual(round.Options, []string{"Ireland", "United Kingdom"}) {
		t.Fatalf("options: got %v", round.Options)
	}
	if round.Expected() != "Ireland, United Kingdom" {
		t.Fatalf("folded answer set: got %q", round.Expected())
	}
	outcome = s.Submit(round, round.Expected())
	if !outcome.Correct || !outcome.Done {
		t.Fatalf("final outcome: %+v", outcome)
	}
	if s.Remaining() != 0 {
		t.Fatalf("session should be finished, %d left", s.Remaining())
	}
}

// TestVariableModeDuplicateLabelsStopShort checks that sampling
// terminates when the drawn question's label repeats and the direction
// forbids folding: the unreachable answers of the shared label are not
// waited for, and the option set stops at what the pool can serve.
func TestVariableModeDuplicateLabelsStopShort(t *testing.T) {
	dataset := testDataset()[:2]
	dataset[0].Name.Official = "Crown Dependency"
	dataset[1].Name.Official = "Crown Dependency"
	d := Derive(dataset, TopicCapital, TopicFromCountry, country.NameOfficial, nil)
	s, err := NewSession(d, 2, testutil.NewFakeRand(0, 1))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Mode() != ModeVariable {
		t.Fatalf("duplicate labels should force variable mode, got %v", s.Mode())
	}
	round := s.Draw()
	if round.Head != "capital of Crown Dependency" {
		t.Fatalf("drawn question: got %q", round.Head)
	}
	if !reflect.DeepEqual(round.Options, []string{"Reykjavik"}) {
		t.Fatalf("only the drawn pair's own answer is sampleable, got %v", round.Options)
	}
	if round.Multiple {
		t.Fatalf("country questions take one answer")
	}
	if outcome := s.Submit(round, "Reykjavik"); !outcome.Correct {
		t.Fatalf("own answer rejected")
	}
	if s.Remaining() != 1 {
		t.Fatalf("only the drawn pair should retire, %d left", s.Remaining())
	}
}

// TestVariableModeDuplicateLabelsKeepDistractors checks that a repeated
// label still picks up distractors from other questions.
func TestVariableModeDuplicateLabelsKeepDistractors(t *testing.T) {
	dataset := testDataset()
	dataset[0].Name.Official = "Crown Dependency"
	dataset[1].Name.Official = "Crown Dependency"
	d := Derive(dataset, TopicCapital, TopicFromCountry, country.NameOfficial, nil)
	s, err := NewSession(d, 2, testutil.NewFakeRand(0, 2))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	round := s.Draw()
	if round.Head != "capital of Crown Dependency" {
		t.Fatalf("drawn question: got %q", round.Head)
	}
	// Pool draws skip the shared label's other value and settle on the
	// United Kingdom's capital as the distractor.
	if !reflect.DeepEqual(round.Options, []string{"London", "Reykjavik"}) {
		t.Fatalf("options: got %v", round.Options)
	}
	if round.Expected() != "Reykjavik" {
		t.Fatalf("expected answer: got %q", round.Expected())
	}
}

// TestSubmitWrong checks mistake counting and that the pair stays in play.
func TestSubmitWrong(t *testing.T) {
	s := capitalQuiz(t, 0, testutil.NewFakeRand(0))
	round := s.Draw()
	outcome := s.Submit(round, "London")
	if outcome.Correct {
		t.Fatalf("wrong answer reported correct")
	}
	if outcome.Reveal != "Reykjavik" {
		t.Fatalf("reveal: got %q", outcome.Reveal)
	}
	if s.Mistakes() != 1 || s.Remaining() != 3 {
		t.Fatalf("after wrong answer: mistakes %d, remaining %d", s.Mistakes(), s.Remaining())
	}
	again := s.Draw()
	if again.Head != round.Head {
		t.Fatalf("unanswered question should stay drawable, got %q", again.Head)
	}
}

// TestFreeTextComparison checks that free-text answers are canonicalized
// on both sides: accents and case for names, magnitude notation for areas.
func TestFreeTextComparison(t *testing.T) {
	dataset := testDataset()
	dataset[0].Capital = []string{"São Tomé"}
	d := Derive(dataset, TopicCapital, TopicFromCountry, country.NameCommon, nil)
	s, err := NewSession(d, 0, testutil.NewFakeRand(0))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if outcome := s.Submit(s.Draw(), "SAO   tome"); !outcome.Correct {
		t.Fatalf("accent-insensitive answer rejected")
	}

	d = Derive(testDataset(), TopicArea, TopicFromCountry, country.NameCommon, nil)
	s, err = NewSession(d, 0, testutil.NewFakeRand(0))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if outcome := s.Submit(s.Draw(), "100000"); !outcome.Correct {
		t.Fatalf("plain-number area rejected")
	}
	if outcome := s.Submit(s.Draw(), "0.07M"); !outcome.Correct {
		t.Fatalf("rescaled area rejected")
	}
}

// TestIndexedComparisonIsExact checks that option selections are compared
// without canonicalization.
func TestIndexedComparisonIsExact(t *testing.T) {
	s := capitalQuiz(t, 3, testutil.NewFakeRand(0))
	round := s.Draw()
	if outcome := s.Submit(round, "reykjavik"); outcome.Correct {
		t.Fatalf("indexed answers must match option strings exactly")
	}
	if outcome := s.Submit(s.Draw(), "Reykjavik"); !outcome.Correct {
		t.Fatalf("exact option string rejected")
	}
}

// TestSessionIDAssigned checks that sessions get distinct identifiers.
func TestSessionIDAssigned(t *testing.T) {
	a := capitalQuiz(t, 0, testutil.NewFakeRand())
	b := capitalQuiz(t, 0, testutil.NewFakeRand())
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("session ids: %q and %q", a.ID(), b.ID())
	}
}
