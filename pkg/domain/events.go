package domain

import (
	"context"
	"time"
)

// InitEvent is published after the engine is (re)initialized.
type InitEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Program   string    `json:"program"`
	Input     string    `json:"input"`
	State     StateID   `json:"state"`
}

// StepEvent is published after every step attempt.
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Program   string    `json:"program"`
	Outcome   Outcome   `json:"outcome"`
	Head      int       `json:"head"`
	Trace     string    `json:"trace"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the stepping goroutine and must not call back into the engine.
type LifecycleHooks struct {
	OnInitialize func(context.Context, *InitEvent)
	OnStep       func(context.Context, *StepEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnInitialize: chain(h.OnInitialize, other.OnInitialize),
		OnStep:       chain(h.OnStep, other.OnStep),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
