package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partsnap",
		Short: "Batch renaming workflow for product part photos",
		Long: `Partsnap turns a folder of raw part photos into a consistently named
set ready for hand-off.

Lookup tables for materials, processing methods and implementers come
from a workbook (xlsx, parquet, or a directory of csv files). The
review command walks the photos one by one, builds each filename from
a form with a live preview, and exports a zip archive plus a session
report.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newReviewCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newScanCmd())

	return cmd
}

// setupLogging writes to stderr so log lines stay off the alt screen
// during a review session.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
