package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input]",
	Short: "Run a program to completion",
	Long: `Initializes the tape with the input and steps until the terminal state,
printing one trace line per step followed by the output.
A rejected step or an exhausted step budget exits with an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		if !cmd.Flags().Changed("max-steps") {
			maxSteps = app.Config.MaxSteps
		}
		format, _ := cmd.Flags().GetString("format")
		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			format = cli.FormatJSON
		}
		strict, _ := cmd.Flags().GetBool("strict")

		engine, err := app.NewEngine(strict)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunBatch(ctx, cmd.OutOrStdout(), engine, input, cli.RunOptions{
			MaxSteps: maxSteps,
			Format:   format,
			Logger:   app.Logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("max-steps", 0, "Maximum number of steps before giving up (default from config)")
	runCmd.Flags().String("format", cli.FormatText, "Output format: text, json or yaml")
	runCmd.Flags().Bool("json", false, "Shorthand for --format json")
	runCmd.Flags().Bool("strict", false, "Report AlreadyComplete instead of re-arming a finished run")
}
