// Package main provides the entry point for the regnal CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	globalVerbose bool
	globalData    []string
	globalSQLite  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "regnal",
		Short:         "Explore the rulers and dynasties of Bengal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVarP(&globalData, "data", "d", nil, "Catalog files to load instead of the built-in data set")
	rootCmd.PersistentFlags().StringVar(&globalSQLite, "from-sqlite", "", "Load the catalog from a SQLite snapshot")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newSearchCmd(),
		newShowCmd(),
		newTimelineCmd(),
		newStatsCmd(),
		newErasCmd(),
		newReligionsCmd(),
		newExportCmd(),
		newImportCmd(),
		newServeCmd(),
		newExploreCmd(),
	)

	return rootCmd
}
