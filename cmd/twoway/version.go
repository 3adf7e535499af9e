package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/twoway"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of twoway",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "twoway version %s\n", twoway.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
