package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the program as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the program's states and transitions.
With --input and --steps the run is replayed and the visited and current
states are highlighted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		steps, _ := cmd.Flags().GetInt("steps")

		engine, err := app.NewEngine(false)
		if err != nil {
			return err
		}
		return cli.Graph(cmd.Context(), cmd.OutOrStdout(), engine, input, steps)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Input to replay for the overlay")
	graphCmd.Flags().Int("steps", 0, "Number of steps to replay before drawing")
}
