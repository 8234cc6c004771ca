package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"partsnap/internal/lookup"
	"partsnap/internal/profile"
	"partsnap/internal/sequence"
	"partsnap/internal/session"
	"partsnap/internal/tui"
)

func newReviewCmd() *cobra.Command {
	var workbook string
	var images string
	var outDir string
	var profilePath string
	var reportPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review and rename a folder of part photos",
		Long: `Walks the images in a folder one by one. For each image the form
fields feed a live filename preview; confirming records the name and
moves to the next image. Exporting writes a zip archive of the renamed
images plus a yaml session report into the output directory.`,
		Example: `  # Review photos against an xlsx workbook
  partsnap review --workbook parts.xlsx --images ./photos

  # Lookup tables from a directory of csv files, custom output directory
  partsnap review --workbook ./tables --images ./photos --out ./renamed

  # Single-person workflow without the implementer field
  partsnap review --workbook parts.xlsx --images ./photos --profile solo.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			prof, err := profile.Load(profilePath)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			tables, err := lookup.NewLoader(workbook).Load()
			if err != nil {
				return fmt.Errorf("failed to load lookup tables: %w", err)
			}
			if prof.RequireImplementer && tables.Implementer.Len() == 0 {
				return fmt.Errorf("workbook %s has no implementer rows; add an implementer sheet or set require_implementer: false in the profile", workbook)
			}

			seq, err := sequence.FromDir(images)
			if err != nil {
				return fmt.Errorf("failed to import images: %w", err)
			}
			slog.Info("Images imported", "folder", images, "count", seq.Len())

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			sess := session.New(tables, prof)
			sess.ImportImages(seq)

			model := tui.New(sess, tui.Config{
				Workbook:    workbook,
				ImageFolder: images,
				ProfilePath: profilePath,
				OutDir:      outDir,
				ReportPath:  reportPath,
			})
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&workbook, "workbook", "", "Path to the lookup workbook: xlsx, parquet, or a directory of csv files (required)")
	cmd.Flags().StringVar(&images, "images", "", "Folder of photos to review (required)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory for the exported archive and report")
	cmd.Flags().StringVar(&profilePath, "profile", "", "Profile yaml overriding units, photo types and the implementer requirement")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path for the session report (default: next to the archive)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	_ = cmd.MarkFlagRequired("workbook")
	_ = cmd.MarkFlagRequired("images")

	return cmd
}
