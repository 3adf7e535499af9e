package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
)

var (
	globalOpts cli.GlobalOptions
	app        *cli.App
)

var rootCmd = &cobra.Command{
	Use:   "twoway",
	Short: "twoway simulates a two-way deterministic finite-state transducer",
	Long: `twoway steps a two-way deterministic finite-state transducer over a framed
input tape, one transition at a time, and shows the trace of every step.

The default program doubles its input: "AB" becomes "ABAB".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = cli.NewApp(globalOpts)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Config file (default .twoway.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Debug, "debug", false, "Log every initialization and step to stderr")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.Program, "program", "p", "", "Program to load (see 'twoway programs')")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NoColor, "no-color", false, "Disable colored output")
}
