package runtime

import (
	"fmt"

	"github.com/aretw0/twoway/pkg/domain"
)

// FormatTrace renders the human-readable line for one step.
// It is lossy (no absolute head position) and only meant for display.
func FormatTrace(o domain.Outcome) string {
	switch o.Kind {
	case domain.Transitioned:
		return fmt.Sprintf("%d. (%s) ► (%s, %s, %s) ► (%s)", o.Step, o.From, readSymbol(o.Read), o.Move, o.Emitted, o.To)
	case domain.Halted:
		return fmt.Sprintf("%d. End of the automata.", o.Step)
	case domain.AlreadyComplete:
		return fmt.Sprintf("%d. Already complete; initialize to run again.", o.Step)
	case domain.Rejected:
		return fmt.Sprintf("%d. (%s) ► (%s) No transition defined for current state and input symbol.", o.Step, o.From, readSymbol(o.Read))
	default:
		return fmt.Sprintf("%d. unknown outcome", o.Step)
	}
}

func readSymbol(s domain.Symbol) string {
	if s == 0 {
		return "∅"
	}
	return s.String()
}
