package twoway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/twoway/internal/runtime"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/programs"
	"github.com/aretw0/twoway/pkg/registry"
)

// Version is the release of the twoway module.
const Version = "0.3.0"

// Engine is the high-level entry point for the twoway library.
// It wraps the internal runtime and provides a simplified API for consumers.
// Like the runtime, it is not safe for concurrent use.
type Engine struct {
	runtime *runtime.Engine
	program domain.Program
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	strict  bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithProgram selects the transition table. Defaults to programs.Doubling.
func WithProgram(p domain.Program) Option {
	return func(e *Engine) {
		e.program = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrictCompletion reports AlreadyComplete when stepping a finished run,
// instead of silently re-arming the engine at the initial state.
func WithStrictCompletion() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// New initializes a new Engine. Call Initialize before stepping.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.program.Table == nil {
		eng.program = programs.Doubling()
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger.With("program", eng.program.Name)))
	}
	if eng.strict {
		runtimeOpts = append(runtimeOpts, runtime.WithStrictCompletion())
	}

	eng.runtime = runtime.NewEngine(eng.program, runtimeOpts...)
	return eng
}

// NewNamed looks name up in the shipped catalogue and builds an Engine for it.
func NewNamed(name string, opts ...Option) (*Engine, error) {
	return NewFromRegistry(programs.Catalog(), name, opts...)
}

// NewFromRegistry builds an Engine for a program held by r.
func NewFromRegistry(r *registry.Registry, name string, opts ...Option) (*Engine, error) {
	p, err := r.Get(name)
	if err != nil {
		return nil, fmt.Errorf("failed to select program: %w", err)
	}
	return New(append(opts, WithProgram(p))...), nil
}

// Initialize (re)creates the tape from input and resets the run.
func (e *Engine) Initialize(ctx context.Context, input string) {
	e.runtime.Initialize(ctx, input)
}

// Step executes one transition attempt and returns its outcome with the rendered trace line.
func (e *Engine) Step(ctx context.Context) (domain.Outcome, string) {
	out := e.runtime.Step(ctx)
	return out, runtime.FormatTrace(out)
}

// Program returns the loaded program.
func (e *Engine) Program() domain.Program { return e.program }

// State returns the current state.
func (e *Engine) State() domain.StateID { return e.runtime.State() }

// Head returns the head index into the framed tape.
func (e *Engine) Head() int { return e.runtime.Head() }

// Tape returns the framed tape.
func (e *Engine) Tape() domain.Tape { return e.runtime.Tape() }

// Output returns the per-step output entries.
func (e *Engine) Output() []domain.Emit { return e.runtime.Output() }

// OutputString returns the output with silent entries removed.
func (e *Engine) OutputString() string { return e.runtime.OutputString() }

// Steps returns the number of step attempts since Initialize.
func (e *Engine) Steps() int { return e.runtime.Steps() }

// Terminal reports whether the run has reached the terminal state.
func (e *Engine) Terminal() bool { return e.runtime.Terminal() }

// Initialized reports whether Initialize has been called.
func (e *Engine) Initialized() bool { return e.runtime.Initialized() }

// Snapshot returns a serialisable copy of the observable state.
func (e *Engine) Snapshot() domain.Snapshot { return e.runtime.Snapshot() }
