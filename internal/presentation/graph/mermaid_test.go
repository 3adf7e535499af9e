package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/twoway/internal/presentation/graph"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/dsl"
	"github.com/aretw0/twoway/pkg/programs"
)

func TestGenerateMermaid_Doubling(t *testing.T) {
	out := graph.GenerateMermaid(programs.Doubling().Table, nil)

	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	for _, want := range []string{
		`q0(("q0"))`,
		`q1["q1"]`,
		`q4((("q4")))`,
		`q0 -- "⊢, 1, ε" --> q1`,
		`q1 -- "A|B, 1, A|B" --> q1`,
		`q1 -- "⊣, -1, ε" --> q2`,
		`q2 -- "A|B, -1, ε" --> q2`,
		`q3 -- "⊣, 0, ε" --> q4`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_SplitsByMove(t *testing.T) {
	b := dsl.New("s-0", "done")
	b.State("s-0").
		On('A').Right().Go("s-0").
		On('B').Left().Go("s-0").
		On(domain.RightEnd).Go("done")
	table, err := b.Build()
	require.NoError(t, err)

	out := graph.GenerateMermaid(table, nil)
	assert.Contains(t, out, `s_0(("s-0"))`, "sanitized id keeps the raw label")
	assert.Contains(t, out, `s_0 -- "A, 1, ε" --> s_0`)
	assert.Contains(t, out, `s_0 -- "B, -1, ε" --> s_0`)
}

func TestGenerateMermaid_EmitsAlignWithReads(t *testing.T) {
	b := dsl.New("q0", "q1")
	b.State("q0").
		On('A').Echo().Right().Go("q0").
		On('B').Right().Go("q0").
		On('C').Write('X').Right().Go("q0").
		On('D').Write('X').Right().Go("q0").
		On('E').Echo().Right().Go("q0").
		On(domain.RightEnd).Go("q1")
	table, err := b.Build()
	require.NoError(t, err)

	out := graph.GenerateMermaid(table, nil)
	assert.Contains(t, out, `q0 -- "A|C|D|E, 1, A|X|X|E" --> q0`)
	assert.Contains(t, out, `q0 -- "B, 1, ε" --> q0`)
	assert.NotContains(t, out, "A|X|E")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	overlay := &graph.GraphOverlay{
		VisitedStates: []domain.StateID{"q0", "q1", "q1", "q2"},
		CurrentState:  "q2",
	}
	out := graph.GenerateMermaid(programs.Doubling().Table, overlay)

	assert.Contains(t, out, "classDef visited")
	assert.Contains(t, out, "classDef current")
	assert.Equal(t, 1, strings.Count(out, "class q1 visited;"))
	assert.Contains(t, out, "class q0 visited;")
	assert.Contains(t, out, "class q2 current;")
	assert.NotContains(t, out, "class q2 visited;")
}
