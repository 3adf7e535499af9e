package twoway_test

import (
	"context"
	"testing"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/programs"
	"github.com/aretw0/twoway/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_DefaultProgram(t *testing.T) {
	ctx := context.Background()
	eng := twoway.New()
	assert.Equal(t, programs.DefaultName, eng.Program().Name)
	assert.False(t, eng.Initialized())

	eng.Initialize(ctx, "AB")
	var traces []string
	for !eng.Terminal() {
		out, trace := eng.Step(ctx)
		require.Equal(t, domain.Transitioned, out.Kind, trace)
		traces = append(traces, trace)
	}

	assert.Len(t, traces, 10)
	assert.Equal(t, "1. (q0) ► (⊢, 1, ε) ► (q1)", traces[0])
	assert.Equal(t, "10. (q3) ► (⊣, 0, ε) ► (q4)", traces[9])
	assert.Equal(t, "ABAB", eng.OutputString())
	assert.Len(t, eng.Output(), 10)

	out, trace := eng.Step(ctx)
	assert.Equal(t, domain.Halted, out.Kind)
	assert.Equal(t, "11. End of the automata.", trace)
	assert.Equal(t, domain.StateID("q0"), eng.State())
	assert.Equal(t, 0, eng.Head())
}

func TestFacade_NewNamed(t *testing.T) {
	eng, err := twoway.NewNamed("reverse")
	require.NoError(t, err)
	assert.Equal(t, "reverse", eng.Program().Name)

	_, err = twoway.NewNamed("nope")
	assert.ErrorIs(t, err, registry.ErrUnknownProgram)
}

func TestFacade_StrictCompletion(t *testing.T) {
	ctx := context.Background()
	eng := twoway.New(twoway.WithProgram(programs.Identity()), twoway.WithStrictCompletion())
	eng.Initialize(ctx, "")
	for !eng.Terminal() {
		eng.Step(ctx)
	}

	out, _ := eng.Step(ctx)
	assert.Equal(t, domain.AlreadyComplete, out.Kind)
	assert.True(t, eng.Terminal())
	assert.Equal(t, 3, eng.Snapshot().Steps)
}

func TestFacade_Hooks(t *testing.T) {
	var outcomes []domain.OutcomeKind
	eng := twoway.New(twoway.WithLifecycleHooks(domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			outcomes = append(outcomes, e.Outcome.Kind)
		},
	}))

	ctx := context.Background()
	eng.Initialize(ctx, "C")
	eng.Step(ctx)
	eng.Step(ctx)

	assert.Equal(t, []domain.OutcomeKind{domain.Transitioned, domain.Rejected}, outcomes)
	assert.Equal(t, 2, eng.Steps())
	assert.Equal(t, 1, eng.Head())
	assert.Equal(t, "⊢C⊣", eng.Tape().String())
}
