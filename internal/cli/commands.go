package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/presentation/tui"
	httpAdapter "github.com/aretw0/twoway/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/twoway/pkg/adapters/mcp"
	"github.com/aretw0/twoway/pkg/programs"
	"github.com/aretw0/twoway/pkg/registry"
	"github.com/aretw0/twoway/pkg/session"
)

// Graph writes the program's Mermaid diagram. With a non-empty input or a
// positive step count the run is replayed and overlaid on the diagram.
func Graph(ctx context.Context, w io.Writer, engine *twoway.Engine, input string, steps int) error {
	sess := session.New(engine)

	if input != "" || steps > 0 {
		if _, err := sess.Initialize(ctx, input); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}
		if steps > 0 {
			if _, _, err := sess.Step(ctx, steps); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, sess.Graph())
	return err
}

// Describe renders the program's markdown description.
func Describe(w io.Writer, engine *twoway.Engine, colored bool) error {
	render := tui.NewRenderer(colored)
	out, err := render(programs.Describe(engine.Program()))
	if err != nil {
		return fmt.Errorf("failed to render description: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// ListPrograms prints the catalogue as an aligned table, marking the selected program.
func ListPrograms(w io.Writer, reg *registry.Registry, selected string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tSUMMARY")
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return err
		}
		mark := ""
		if name == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, p.Name, p.Summary)
	}
	return tw.Flush()
}

// Serve runs the HTTP adapter until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, app *App, addr string) error {
	engine, err := app.NewEngine(false)
	if err != nil {
		return err
	}

	sess := session.New(engine,
		session.WithLogger(app.Logger),
		session.WithMaxSteps(app.Config.MaxSteps),
	)
	handler := httpAdapter.NewHandler(sess,
		httpAdapter.WithGatherer(app.Registry),
		httpAdapter.WithLogger(app.Logger),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting twoway server", "addr", addr, "program", engine.Program().Name)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		app.Logger.Info("Shutdown signal received, shutting down server")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		app.Logger.Info("Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP adapter over stdio or SSE.
func ServeMCP(ctx context.Context, app *App, transport string, port int) error {
	engine, err := app.NewEngine(false)
	if err != nil {
		return err
	}

	sess := session.New(engine,
		session.WithLogger(app.Logger),
		session.WithMaxSteps(app.Config.MaxSteps),
	)
	srv := mcpAdapter.NewServer(sess, mcpAdapter.WithLogger(app.Logger))

	switch transport {
	case "stdio":
		app.Logger.Info("Starting twoway MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		app.Logger.Info("Starting twoway MCP Server (SSE)", "port", port)
		if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		app.Logger.Info("MCP Server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
	}
}
