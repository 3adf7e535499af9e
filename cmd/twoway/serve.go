package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/twoway/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes a single engine over a JSON API: POST /initialize, /step and /reset,
GET /state, /graph, /program, /events (SSE) and /metrics (Prometheus).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if !cmd.Flags().Changed("addr") {
			addr = app.Config.HTTP.Addr
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Serve(ctx, app, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
