package runtime_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/twoway/internal/runtime"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/programs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var inits []*domain.InitEvent
	var steps []*domain.StepEvent

	hooks := domain.LifecycleHooks{
		OnInitialize: func(ctx context.Context, e *domain.InitEvent) {
			inits = append(inits, e)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			steps = append(steps, e)
		},
	}

	engine := runtime.NewEngine(programs.Doubling(), runtime.WithLifecycleHooks(hooks))
	ctx := context.Background()

	engine.Initialize(ctx, "A")
	require.Len(t, inits, 1)
	assert.Equal(t, "A", inits[0].Input)
	assert.Equal(t, "double", inits[0].Program)
	assert.Equal(t, domain.StateID("q0"), inits[0].State)

	engine.Step(ctx)
	engine.Step(ctx)
	require.Len(t, steps, 2)
	assert.Equal(t, "1. (q0) ► (⊢, 1, ε) ► (q1)", steps[0].Trace)
	assert.Equal(t, "2. (q1) ► (A, 1, A) ► (q1)", steps[1].Trace)
	assert.Equal(t, 2, steps[1].Head)
	assert.Equal(t, domain.Transitioned, steps[1].Outcome.Kind)
}

func TestEngine_HooksAccumulate(t *testing.T) {
	count := 0
	inc := domain.LifecycleHooks{OnStep: func(context.Context, *domain.StepEvent) { count++ }}

	engine := runtime.NewEngine(programs.Doubling(),
		runtime.WithLifecycleHooks(inc),
		runtime.WithLifecycleHooks(inc),
	)
	engine.Initialize(context.Background(), "")
	engine.Step(context.Background())

	assert.Equal(t, 2, count)
}

func TestEngine_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := runtime.NewEngine(programs.Doubling(), runtime.WithLogger(logger))
	engine.Initialize(context.Background(), "B")
	engine.Step(context.Background())

	out := buf.String()
	assert.Contains(t, out, "Engine initialized")
	assert.Contains(t, out, "outcome=transitioned")
	assert.Contains(t, out, "program=double")
}
