// Package cmd provides the command-line interface for gh-repo-metrics.
// It defines the Cobra command structure, flag handling, and command
// execution for collecting GitHub repository metadata and metrics.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by the main package at startup.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gh-repo-metrics",
	Short: "Fetch GitHub repository metadata and aggregate it into metrics",
	Long: `gh-repo-metrics fetches repository metadata, releases, issues and
pull requests from the GitHub REST API, validates the collected data and
aggregates it into summary metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		// fallback message, collection logic is in a subcommand
		fmt.Println("Use `gh-repo-metrics fetch` to start collecting metrics.")
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
