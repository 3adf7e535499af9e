package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
	"github.com/aretw0/twoway/pkg/programs"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the program's description and transition table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := app.NewEngine(false)
		if err != nil {
			return err
		}
		return cli.Describe(cmd.OutOrStdout(), engine, app.Colored && cli.IsTerminal(os.Stdout))
	},
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the available programs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListPrograms(cmd.OutOrStdout(), programs.Catalog(), app.Config.Program)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(programsCmd)
}
