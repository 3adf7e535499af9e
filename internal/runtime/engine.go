package runtime

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/twoway/pkg/domain"
)

// Engine is the core transducer runner.
// It owns one tape and a reference to the program's table, and is mutated in
// place by Initialize and Step. It is not safe for concurrent use.
type Engine struct {
	program domain.Program
	table   *domain.Table
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	strict  bool

	tape        domain.Tape
	state       domain.StateID
	head        int
	output      []domain.Emit
	steps       int
	initialized bool
}

// NewEngine creates an engine for program. Call Initialize before stepping;
// stepping an uninitialized engine reports Rejected.
func NewEngine(program domain.Program, opts ...EngineOption) *Engine {
	e := &Engine{
		program: program,
		table:   program.Table,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:   program.Table.Initial(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize frames input on a fresh tape and resets the engine to
// (initial state, head 0, no output, 0 steps). It fully supersedes prior state.
func (e *Engine) Initialize(ctx context.Context, input string) {
	e.tape = domain.NewTape(input)
	e.state = e.table.Initial()
	e.head = 0
	e.output = nil
	e.steps = 0
	e.initialized = true

	e.logger.Debug("Engine initialized", "program", e.program.Name, "input", input, "tape_len", e.tape.Len())

	if e.hooks.OnInitialize != nil {
		e.hooks.OnInitialize(ctx, &domain.InitEvent{
			Timestamp: time.Now(),
			Program:   e.program.Name,
			Input:     input,
			State:     e.state,
		})
	}
}

// Step executes exactly one transition attempt.
//
// The step counter advances before the outcome is classified, so Halted and
// Rejected attempts are counted too. Stepping from the terminal state re-arms
// the engine at the initial state with the head on the left boundary, unless
// strict completion is enabled.
func (e *Engine) Step(ctx context.Context) domain.Outcome {
	// 1. Record what we are looking at
	from := e.state
	read, onTape := e.symbolAtHead()

	// 2. Lookup
	tr, found := e.table.Lookup(from, read)

	// 3. Count the attempt
	e.steps++
	out := domain.Outcome{Step: e.steps, From: from, Read: read}

	switch {
	case e.table.IsTerminal(from):
		if e.strict {
			out.Kind = domain.AlreadyComplete
			break
		}
		e.head = 0
		e.state = e.table.Initial()
		out.Kind = domain.Halted

	case !onTape || !found || !e.tape.In(e.head+int(tr.Move)):
		// A move off the tape is treated like a missing rule: nothing changes.
		out.Kind = domain.Rejected

	default:
		e.head += int(tr.Move)
		e.output = append(e.output, tr.Emit)
		e.state = tr.Next

		out.Kind = domain.Transitioned
		out.Move = tr.Move
		out.Emitted = tr.Emit
		out.To = tr.Next
	}

	e.publish(ctx, out)
	return out
}

func (e *Engine) symbolAtHead() (domain.Symbol, bool) {
	if !e.tape.In(e.head) {
		return 0, false
	}
	return e.tape.At(e.head), true
}

func (e *Engine) publish(ctx context.Context, out domain.Outcome) {
	trace := FormatTrace(out)
	e.logger.Debug("Step", "step", out.Step, "outcome", out.Kind.String(), "state", e.state, "head", e.head, "trace", trace)

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(ctx, &domain.StepEvent{
			Timestamp: time.Now(),
			Program:   e.program.Name,
			Outcome:   out,
			Head:      e.head,
			Trace:     trace,
		})
	}
}

// Program returns the loaded program.
func (e *Engine) Program() domain.Program { return e.program }

// State returns the current state.
func (e *Engine) State() domain.StateID { return e.state }

// Head returns the head index into the framed tape.
func (e *Engine) Head() int { return e.head }

// Tape returns the framed tape.
func (e *Engine) Tape() domain.Tape { return e.tape }

// Steps returns the number of step attempts since the last Initialize.
func (e *Engine) Steps() int { return e.steps }

// Initialized reports whether Initialize has been called.
func (e *Engine) Initialized() bool { return e.initialized }

// Terminal reports whether the engine sits in the terminal state.
func (e *Engine) Terminal() bool { return e.table.IsTerminal(e.state) }

// Output returns a copy of the per-step output, one entry per transition.
func (e *Engine) Output() []domain.Emit {
	out := make([]domain.Emit, len(e.output))
	copy(out, e.output)
	return out
}

// OutputString joins the emitted symbols. Silent entries contribute nothing.
func (e *Engine) OutputString() string {
	var sb strings.Builder
	for _, em := range e.output {
		if em.Present {
			sb.WriteRune(rune(em.Symbol))
		}
	}
	return sb.String()
}

// Snapshot copies every observer into a serialisable value.
func (e *Engine) Snapshot() domain.Snapshot {
	emissions := make([]string, len(e.output))
	for i, em := range e.output {
		if em.Present {
			emissions[i] = em.Symbol.String()
		}
	}
	return domain.Snapshot{
		Program:   e.program.Name,
		State:     e.state,
		Head:      e.head,
		Tape:      e.tape.String(),
		Output:    e.OutputString(),
		Emissions: emissions,
		Steps:     e.steps,
		Terminal:  e.Terminal(),
	}
}
