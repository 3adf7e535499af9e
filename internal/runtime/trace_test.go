package runtime_test

import (
	"testing"

	"github.com/aretw0/twoway/internal/runtime"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTrace(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
		want    string
	}{
		{
			name: "Silent Left Move",
			outcome: domain.Outcome{
				Kind: domain.Transitioned, Step: 4, From: "q1", Read: domain.RightEnd,
				Move: domain.Left, Emitted: domain.Silent, To: "q2",
			},
			want: "4. (q1) ► (⊣, -1, ε) ► (q2)",
		},
		{
			name: "Emitting Step",
			outcome: domain.Outcome{
				Kind: domain.Transitioned, Step: 2, From: "q1", Read: 'B',
				Move: domain.Right, Emitted: domain.Emits('B'), To: "q1",
			},
			want: "2. (q1) ► (B, 1, B) ► (q1)",
		},
		{
			name:    "Halted",
			outcome: domain.Outcome{Kind: domain.Halted, Step: 11, From: "q4", Read: domain.RightEnd},
			want:    "11. End of the automata.",
		},
		{
			name:    "Already Complete",
			outcome: domain.Outcome{Kind: domain.AlreadyComplete, Step: 5, From: "q4"},
			want:    "5. Already complete; initialize to run again.",
		},
		{
			name:    "Rejected",
			outcome: domain.Outcome{Kind: domain.Rejected, Step: 2, From: "q1", Read: 'C'},
			want:    "2. (q1) ► (C) No transition defined for current state and input symbol.",
		},
		{
			name:    "Rejected Off Tape",
			outcome: domain.Outcome{Kind: domain.Rejected, Step: 1, From: "q0"},
			want:    "1. (q0) ► (∅) No transition defined for current state and input symbol.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.FormatTrace(tt.outcome))
		})
	}
}
