package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/trivis/pkg/visualizer"
	"github.com/philipparndt/trivis/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "trivis",
	Short: "Inspect and render classical triangle constructions",
	Long: `trivis computes the notable centers, circles and lines of a triangle
given by its three vertices, and renders them as PNG snapshots.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		visualizer.SetLogger(newLogger(verbose))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log skipped constructions to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
