package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lva_backend",
	Short: "Ledger view backend for supplier payment movements",
	Long: `Backend service that loads supplier payment movements, evaluates
filter, sort and pagination state server-side, and exposes the resulting
page, totals and summary reports over an HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
