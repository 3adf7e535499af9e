package domain

// OutcomeKind classifies the result of a single step.
type OutcomeKind int

const (
	// Transitioned means a transition fired.
	Transitioned OutcomeKind = iota
	// Halted means the engine was already terminal; it has been re-armed at the initial state.
	Halted
	// Rejected means no transition exists for the current (state, symbol) pair.
	Rejected
	// AlreadyComplete replaces Halted when strict completion is enabled; nothing is reset.
	AlreadyComplete
)

func (k OutcomeKind) String() string {
	switch k {
	case Transitioned:
		return "transitioned"
	case Halted:
		return "halted"
	case Rejected:
		return "rejected"
	case AlreadyComplete:
		return "already_complete"
	default:
		return "unknown"
	}
}

// Final reports whether a caller should stop stepping after this outcome.
func (k OutcomeKind) Final() bool {
	return k != Transitioned
}

// Outcome records what one step did.
// From and Read are always set; Move, Emitted and To only for Transitioned.
type Outcome struct {
	Kind    OutcomeKind
	Step    int
	From    StateID
	Read    Symbol
	Move    Move
	Emitted Emit
	To      StateID
}
