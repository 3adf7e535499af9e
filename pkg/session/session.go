package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/logging"
	"github.com/aretw0/twoway/internal/presentation/graph"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/runner"
)

// ErrNotInitialized is returned when stepping or resetting before Initialize.
var ErrNotInitialized = errors.New("session not initialized")

// StepView describes one step attempt.
type StepView struct {
	Step    int    `json:"step"`
	Outcome string `json:"outcome"`
	Trace   string `json:"trace"`
}

// View is the serialisable state of a session.
type View struct {
	domain.Snapshot
	Initialized bool             `json:"initialized"`
	Input       string           `json:"input"`
	Visited     []domain.StateID `json:"visited"`
	Last        *StepView        `json:"last,omitempty"`
}

// Session guards one engine with a mutex.
type Session struct {
	mu       sync.Mutex
	engine   *twoway.Engine
	input    string
	visited  []domain.StateID
	last     *StepView
	maxSteps int
	logger   *slog.Logger

	subMu       sync.RWMutex
	subscribers map[chan StepView]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger configures a logger for the Session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxSteps bounds the count accepted by a single Step call.
func WithMaxSteps(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// New wraps engine. The session takes ownership; callers must not step the engine directly.
func New(engine *twoway.Engine, opts ...Option) *Session {
	s := &Session{
		engine:      engine,
		maxSteps:    runner.DefaultMaxSteps,
		logger:      logging.NewNop(),
		subscribers: make(map[chan StepView]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize sanitizes input and (re)starts the run on it.
func (s *Session) Initialize(ctx context.Context, input string) (View, error) {
	clean, err := runner.SanitizeInput(input)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.initLocked(ctx, clean)
	return s.viewLocked(), nil
}

// Reset re-initializes the engine with the last input.
func (s *Session) Reset(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.Initialized() {
		return View{}, ErrNotInitialized
	}
	s.initLocked(ctx, s.input)
	return s.viewLocked(), nil
}

func (s *Session) initLocked(ctx context.Context, input string) {
	s.engine.Initialize(ctx, input)
	s.input = input
	s.visited = []domain.StateID{s.engine.State()}
	s.last = nil
	s.logger.Debug("Session initialized", "input", input, "program", s.engine.Program().Name)
}

// Step performs up to count step attempts, stopping early after any outcome
// that is not Transitioned. A count below one means one.
func (s *Session) Step(ctx context.Context, count int) ([]StepView, View, error) {
	if count < 1 {
		count = 1
	}
	if count > s.maxSteps {
		return nil, View{}, fmt.Errorf("%w: count %d exceeds %d", runner.ErrStepLimit, count, s.maxSteps)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.Initialized() {
		return nil, View{}, ErrNotInitialized
	}

	steps := make([]StepView, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return steps, s.viewLocked(), err
		}

		out, trace := s.engine.Step(ctx)
		sv := StepView{Step: out.Step, Outcome: out.Kind.String(), Trace: trace}
		steps = append(steps, sv)
		s.last = &sv

		if out.Kind == domain.Transitioned {
			s.visit(out.To)
		}
		s.broadcast(sv)

		if out.Kind.Final() {
			break
		}
	}
	return steps, s.viewLocked(), nil
}

func (s *Session) visit(id domain.StateID) {
	for _, v := range s.visited {
		if v == id {
			return
		}
	}
	s.visited = append(s.visited, id)
}

// View returns the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		Snapshot:    s.engine.Snapshot(),
		Initialized: s.engine.Initialized(),
		Input:       s.input,
		Visited:     append([]domain.StateID(nil), s.visited...),
	}
	if s.last != nil {
		last := *s.last
		v.Last = &last
	}
	return v
}

// Program returns the loaded program.
func (s *Session) Program() domain.Program {
	return s.engine.Program()
}

// Graph renders the program as Mermaid, highlighting the run so far.
func (s *Session) Graph() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var overlay *graph.GraphOverlay
	if s.engine.Initialized() {
		overlay = &graph.GraphOverlay{
			VisitedStates: append([]domain.StateID(nil), s.visited...),
			CurrentState:  s.engine.State(),
		}
	}
	return graph.GenerateMermaid(s.engine.Program().Table, overlay)
}

// Subscribe registers for step events. The returned function unsubscribes
// and closes the channel.
func (s *Session) Subscribe() (<-chan StepView, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	ch := make(chan StepView, 16)
	s.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			delete(s.subscribers, ch)
			close(ch)
		})
	}
}

func (s *Session) broadcast(sv StepView) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- sv:
		default:
			// Drop message if channel is full (slow client)
			s.logger.Warn("Subscriber buffer full, dropping step event", "step", sv.Step)
		}
	}
}
