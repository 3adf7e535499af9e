package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/runner"
)

// Output formats accepted by RunBatch.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RunOptions configures a batch run.
type RunOptions struct {
	MaxSteps int
	Format   string
	Logger   *slog.Logger
}

// Report is the machine-readable result of a batch run.
type Report struct {
	Snapshot  domain.Snapshot `json:"snapshot" yaml:"snapshot"`
	Traces    []string        `json:"traces" yaml:"traces"`
	Completed bool            `json:"completed" yaml:"completed"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunBatch runs engine on input to completion and writes the result to w.
// Text mode prints each trace line as it happens followed by the output.
// The run error (rejection, step limit, cancellation) is returned after the
// partial result has been written.
func RunBatch(ctx context.Context, w io.Writer, engine *twoway.Engine, input string, opts RunOptions) error {
	clean, err := runner.SanitizeInput(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	runnerOpts := []runner.Option{runner.WithMaxSteps(opts.MaxSteps)}
	if opts.Logger != nil {
		runnerOpts = append(runnerOpts, runner.WithLogger(opts.Logger))
	}
	if format == FormatText {
		runnerOpts = append(runnerOpts, runner.WithObserver(func(_ domain.Outcome, trace string) {
			fmt.Fprintln(w, trace)
		}))
	}

	engine.Initialize(ctx, clean)
	res, runErr := runner.NewRunner(runnerOpts...).Run(ctx, engine)

	report := Report{
		Snapshot:  engine.Snapshot(),
		Traces:    res.Traces,
		Completed: res.Completed,
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}

	switch format {
	case FormatText:
		fmt.Fprintf(w, "Output: %s\n", res.Output)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return runErr
}
