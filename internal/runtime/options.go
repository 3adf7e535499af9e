package runtime

import (
	"log/slog"

	"github.com/aretw0/twoway/pkg/domain"
)

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. A nil logger keeps the no-op default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithStrictCompletion makes a step from the terminal state report
// AlreadyComplete and leave the engine untouched, instead of silently
// re-arming it at the initial state. Off by default.
func WithStrictCompletion() EngineOption {
	return func(e *Engine) {
		e.strict = true
	}
}
