package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/logging"
	"github.com/aretw0/twoway/pkg/programs"
	"github.com/aretw0/twoway/pkg/session"
)

const (
	programURI = "twoway://program"
	stateURI   = "twoway://state"
)

// StepResponse aligns with the HTTP adapter and provides a unified structure across adapters.
type StepResponse struct {
	State session.View        `json:"state" jsonschema_description:"The engine state after stepping"`
	Steps []session.StepView `json:"steps" jsonschema_description:"One entry per step attempt, with its trace line"`
}

type initializeArgs struct {
	Input string `mapstructure:"input"`
}

type stepArgs struct {
	Count int `mapstructure:"count"`
}

// Server wraps a session and exposes it as an MCP Server.
type Server struct {
	session   *session.Session
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures a logger for the Server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		session:   sess,
		mcpServer: server.NewMCPServer("twoway-mcp", twoway.Version),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: initialize
	s.mcpServer.AddTool(mcp.NewTool("initialize",
		mcp.WithDescription("Load an input string onto the tape and reset the run."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string over the program alphabet (may be empty)")),
		mcp.WithOutputSchema[session.View](),
	), mcp.NewStructuredToolHandler(s.handleInitialize))

	// TOOL: step
	s.mcpServer.AddTool(mcp.NewTool("step",
		mcp.WithDescription("Execute one or more transition attempts. Stops early on halt or rejection."),
		mcp.WithNumber("count", mcp.Description("Number of steps to attempt (default 1)")),
		mcp.WithOutputSchema[StepResponse](),
	), mcp.NewStructuredToolHandler(s.handleStep))

	// TOOL: reset
	s.mcpServer.AddTool(mcp.NewTool("reset",
		mcp.WithDescription("Re-initialize the run with the last input."),
		mcp.WithOutputSchema[session.View](),
	), mcp.NewStructuredToolHandler(s.handleReset))

	// TOOL: state
	s.mcpServer.AddTool(mcp.NewTool("state",
		mcp.WithDescription("Get the current tape, head, state and output."),
		mcp.WithOutputSchema[session.View](),
	), mcp.NewStructuredToolHandler(s.handleState))

	// TOOL: graph
	s.mcpServer.AddTool(mcp.NewTool("graph",
		mcp.WithDescription("Get the program as a Mermaid diagram with the run highlighted."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.session.Graph()), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleInitialize(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View, error) {
	var in initializeArgs
	if err := decodeArgs(args, &in); err != nil {
		return session.View{}, err
	}

	view, err := s.session.Initialize(ctx, in.Input)
	if err != nil {
		s.logger.Warn("MCP Initialize: Input rejected", "error", err, "size", len(in.Input))
		return session.View{}, fmt.Errorf("input rejected: %w", err)
	}
	return view, nil
}

func (s *Server) handleStep(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (StepResponse, error) {
	var in stepArgs
	if err := decodeArgs(args, &in); err != nil {
		return StepResponse{}, err
	}

	steps, view, err := s.session.Step(ctx, in.Count)
	if err != nil {
		return StepResponse{}, fmt.Errorf("step failed: %w", err)
	}
	return StepResponse{State: view, Steps: steps}, nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View, error) {
	view, err := s.session.Reset(ctx)
	if err != nil {
		return session.View{}, fmt.Errorf("reset failed: %w", err)
	}
	return view, nil
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View, error) {
	return s.session.View(), nil
}

// decodeArgs maps loosely typed tool arguments (JSON numbers arrive as float64) onto out.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) registerResources() {
	// EXPOSE: twoway://program
	s.mcpServer.AddResource(mcp.NewResource(programURI, "Loaded Program",
		mcp.WithResourceDescription("Description and transition table of the loaded program"),
		mcp.WithMIMEType("text/markdown"),
	), s.readProgram)

	// EXPOSE: twoway://state
	s.mcpServer.AddResource(mcp.NewResource(stateURI, "Run State",
		mcp.WithMIMEType("text/plain"),
	), s.readState)
}

func (s *Server) readProgram(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      programURI,
			MIMEType: "text/markdown",
			Text:     programs.Describe(s.session.Program()),
		},
	}, nil
}

func (s *Server) readState(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	v := s.session.View()
	text := fmt.Sprintf("state=%s head=%d tape=%s output=%q steps=%d terminal=%t",
		v.State, v.Head, v.Tape, v.Output, v.Steps, v.Terminal)
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      stateURI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
