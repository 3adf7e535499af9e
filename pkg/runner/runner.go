package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/twoway/pkg/domain"
)

// ErrRejected is returned when the engine parks on a (state, symbol) pair with no rule.
var ErrRejected = errors.New("transition rejected")

// ErrStepLimit is returned when the run exceeds the configured step budget.
var ErrStepLimit = errors.New("step limit exceeded")

// Stepper is the part of the engine the runner drives.
// *twoway.Engine satisfies it.
type Stepper interface {
	Step(ctx context.Context) (domain.Outcome, string)
	Terminal() bool
	OutputString() string
}

// Runner drives an engine to completion on behalf of a UI layer.
// The engine itself never loops; this is the caller-side loop.
type Runner struct {
	// MaxSteps bounds the number of step calls of a single Run.
	// Values below 1 mean DefaultMaxSteps.
	MaxSteps int

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Observer, if set, sees every step.
	Observer Observer
}

// Result is what a Run produced.
type Result struct {
	Outcomes []domain.Outcome
	Traces   []string
	Output   string
	// Completed is true when the run ended in the terminal state.
	Completed bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		MaxSteps: DefaultMaxSteps,
		Logger:   nopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run steps s until it reaches the terminal state, is rejected, runs out of
// budget or ctx is cancelled. It never steps an engine that is already terminal,
// so a finished run is not silently re-armed.
// The Result is returned alongside any error and holds the partial run.
func (r *Runner) Run(ctx context.Context, s Stepper) (*Result, error) {
	res := &Result{}

	logger := r.Logger
	if logger == nil {
		logger = nopLogger()
	}
	maxSteps := r.MaxSteps
	if maxSteps < 1 {
		maxSteps = DefaultMaxSteps
	}

	for steps := 0; ; steps++ {
		if s.Terminal() {
			res.Completed = true
			break
		}
		if err := ctx.Err(); err != nil {
			res.Output = s.OutputString()
			return res, err
		}
		if steps >= maxSteps {
			res.Output = s.OutputString()
			return res, fmt.Errorf("%w: %d steps without reaching the terminal state", ErrStepLimit, steps)
		}

		out, trace := s.Step(ctx)
		res.Outcomes = append(res.Outcomes, out)
		res.Traces = append(res.Traces, trace)
		if r.Observer != nil {
			r.Observer(out, trace)
		}

		if out.Kind == domain.Rejected {
			logger.Debug("Run rejected", "step", out.Step, "state", out.From, "symbol", out.Read.String())
			res.Output = s.OutputString()
			return res, fmt.Errorf("%w: state %s has no rule for %q", ErrRejected, out.From, out.Read.String())
		}
		if out.Kind.Final() {
			res.Completed = true
			break
		}
	}

	res.Output = s.OutputString()
	logger.Debug("Run completed", "steps", len(res.Outcomes), "output", res.Output)
	return res, nil
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
