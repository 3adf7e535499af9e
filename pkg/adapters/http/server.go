package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/logging"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/runner"
	"github.com/aretw0/twoway/pkg/session"
)

// Server exposes one session over HTTP.
type Server struct {
	Session  *session.Session
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer selects the registry served on /metrics.
// Defaults to prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger configures request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// InitializeRequest is the body of POST /initialize.
type InitializeRequest struct {
	Input string `json:"input"`
}

// StepRequest is the optional body of POST /step.
type StepRequest struct {
	Count int `json:"count"`
}

// StepResponse is returned by POST /step. Attempts lists the steps taken by
// this request; the embedded view keeps the engine's own step counter.
type StepResponse struct {
	session.View
	Attempts []session.StepView `json:"attempts"`
}

// ProgramResponse is returned by GET /program.
type ProgramResponse struct {
	Name        string           `json:"name"`
	Summary     string           `json:"summary"`
	Alphabet    string           `json:"alphabet"`
	Initial     domain.StateID   `json:"initial"`
	Terminal    domain.StateID   `json:"terminal"`
	States      []domain.StateID `json:"states"`
	Description string           `json:"description"`
}

// NewHandler creates a new HTTP handler for the session.
func NewHandler(sess *session.Session, opts ...Option) http.Handler {
	s := &Server{
		Session:  sess,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/initialize", s.Initialize)
	r.Post("/step", s.Step)
	r.Post("/reset", s.Reset)
	r.Get("/state", s.GetState)
	r.Get("/graph", s.GetGraph)
	r.Get("/program", s.GetProgram)
	r.Get("/events", s.SubscribeEvents)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Initialize handles the POST /initialize request.
func (s *Server) Initialize(w http.ResponseWriter, r *http.Request) {
	var body InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Initialize: Invalid request body", "error", err)
		return
	}

	view, err := s.Session.Initialize(r.Context(), body.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Initialize: Input rejected", "error", err, "size", len(body.Input))
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

// Step handles the POST /step request. An empty body steps once.
func (s *Server) Step(w http.ResponseWriter, r *http.Request) {
	var body StepRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Step: Invalid request body", "error", err)
		return
	}

	steps, view, err := s.Session.Step(r.Context(), body.Count)
	if err != nil {
		s.writeError(w, "Step", err)
		return
	}
	s.writeJSON(w, http.StatusOK, StepResponse{View: view, Attempts: steps})
}

// Reset handles the POST /reset request.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := s.Session.Reset(r.Context())
	if err != nil {
		s.writeError(w, "Reset", err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

// GetState handles the GET /state request.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Session.View())
}

// GetGraph handles the GET /graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, s.Session.Graph())
}

// GetProgram handles the GET /program request.
func (s *Server) GetProgram(w http.ResponseWriter, r *http.Request) {
	p := s.Session.Program()
	s.writeJSON(w, http.StatusOK, ProgramResponse{
		Name:        p.Name,
		Summary:     p.Summary,
		Alphabet:    p.Alphabet.String(),
		Initial:     p.Table.Initial(),
		Terminal:    p.Table.Terminal(),
		States:      p.Table.States(),
		Description: p.Description,
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "twoway-http",
		"version": twoway.Version,
		"program": s.Session.Program().Name,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
// Each step attempt is sent as one JSON data line.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := s.Session.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				s.Logger.Error("SubscribeEvents: encode failed", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: step\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrNotInitialized):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, runner.ErrStepLimit):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.Logger.Error(op+" failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
