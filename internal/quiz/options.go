package quiz

// MaxOptions caps the size of a presented option set.
const MaxOptions = 8

// Mode describes how a session presents answer choices.
type Mode int

const (
	// ModeFree accepts typed answers and no option list is shown.
	ModeFree Mode = iota
	// ModeExact shows the same option list for every question: the full
	// set of distinct answers.
	ModeExact
	// ModeVariable samples a fresh option set for every question.
	ModeVariable
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeExact:
		return "exact"
	case ModeVariable:
		return "variable"
	}
	return "unknown"
}

// OptionBounds returns the accepted option-count range for a pair set,
// plus the extra sentinel values outside it: 0 stands for free text and is
// only offered when every question label is distinct, since duplicate
// labels need multiple option lists to tell the expected answers apart.
func OptionBounds(d Derived) (lower, upper int, extras []int) {
	upper = len(d.UniqueAnswers())
	if upper > MaxOptions {
		upper = MaxOptions
	}
	if d.DistinctQuestions() {
		extras = []int{0}
	}
	return 2, upper, extras
}

// ModeFor resolves the presentation mode for a validated option count.
// Asking for exactly the distinct answer count pins the option list, but
// only when question labels are distinct; with duplicate labels the same
// list could not separate one label's expected answers from another's, so
// the count is served by per-question sampling instead.
func ModeFor(d Derived, count int) Mode {
	if count == 0 {
		return ModeFree
	}
	if count == len(d.UniqueAnswers()) && d.DistinctQuestions() {
		return ModeExact
	}
	return ModeVariable
}
