package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
)

var stepCmd = &cobra.Command{
	Use:   "step [input]",
	Short: "Step through a run interactively",
	Long: `Shows the tape with the head highlighted and waits for a command:
Enter performs one step, 'r' resets to the same input and 'q' quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}

		engine, err := app.NewEngine(false)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		tty := cli.IsTerminal(os.Stdout)
		return cli.RunInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), engine, input, cli.StepOptions{
			Colored: app.Colored && tty,
			Banner:  tty && cli.IsTerminal(os.Stdin),
		})
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
