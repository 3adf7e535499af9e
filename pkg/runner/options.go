package runner

import (
	"log/slog"

	"github.com/aretw0/twoway/pkg/domain"
)

// DefaultMaxSteps bounds a single Run so a looping program cannot spin forever.
const DefaultMaxSteps = 10_000

// Observer is called after every step with its outcome and trace line.
type Observer func(out domain.Outcome, trace string)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithMaxSteps overrides DefaultMaxSteps. Values below 1 are ignored.
func WithMaxSteps(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.MaxSteps = n
		}
	}
}

// WithObserver registers a per-step callback (e.g. to print traces as they happen).
func WithObserver(obs Observer) Option {
	return func(r *Runner) {
		r.Observer = obs
	}
}
