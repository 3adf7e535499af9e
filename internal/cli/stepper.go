package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/presentation/tui"
	"github.com/aretw0/twoway/pkg/runner"
)

// StepOptions configures the interactive stepper.
type StepOptions struct {
	Colored bool
	Banner  bool
}

// RunInteractive drives engine one step per line read from in:
// an empty line steps, "r" re-initializes with the same input and "q" quits.
// Once a step halts or is rejected, stepping is refused until a reset.
// EOF and ctx cancellation end the session without error.
func RunInteractive(ctx context.Context, in io.Reader, w io.Writer, engine *twoway.Engine, input string, opts StepOptions) error {
	clean, err := runner.SanitizeInput(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	if opts.Banner {
		tui.PrintBanner(w)
	}

	engine.Initialize(ctx, clean)
	finished := false
	printView(w, engine, opts.Colored)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines := readLines(readCtx, in)
	for {
		if finished {
			fmt.Fprint(w, "Run finished. [r] reset, [q] quit > ")
		} else {
			fmt.Fprint(w, "[Enter] step, [r] reset, [q] quit > ")
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(w)
				return nil
			}
			line = strings.ToLower(strings.TrimSpace(l))
		}

		switch line {
		case "q", "quit", "exit":
			return nil
		case "r", "reset":
			engine.Initialize(ctx, clean)
			finished = false
			fmt.Fprintln(w, ">>> Reset.")
			printView(w, engine, opts.Colored)
		case "":
			if finished {
				continue
			}
			out, trace := engine.Step(ctx)
			fmt.Fprintln(w, trace)
			finished = out.Kind.Final() || engine.Terminal()
			printView(w, engine, opts.Colored)
		default:
			fmt.Fprintf(w, "Unknown command %q\n", line)
		}
	}
}

func printView(w io.Writer, engine *twoway.Engine, colored bool) {
	fmt.Fprintf(w, "  tape:   %s\n", tui.RenderTape(engine.Tape(), engine.Head(), colored))
	fmt.Fprintf(w, "  state:  %s   steps: %d\n", engine.State(), engine.Steps())
	fmt.Fprintf(w, "  output: %s\n", tui.RenderOutput(engine.OutputString()))
}

// readLines feeds lines from r into a channel so the caller can also watch ctx.
// The goroutine exits at EOF; a read blocked on a terminal outlives cancellation
// until the process exits.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
