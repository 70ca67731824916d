// Package cmd implements the CLI commands for hyeat using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyeat",
	Short: "hyeat — normalize the Hanyang food-service menus into per-day JSON",
	Long: `hyeat fetches the weekly cafeteria menu grid from the university food-service
portal, overlays each day's detail view, and writes one menu file per date.

Usage:
  hyeat scrape [YYYY-MM-DD] [flags]`,
	SilenceUsage: true,
}

// Execute runs the root command. An interrupt cancels the run in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
