package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"partsnap/internal/sequence"
)

func newScanCmd() *cobra.Command {
	var images string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the photos a review session would import",
		Long: `Scans a folder the same way review does: natural sort order, hidden
and non-photo files skipped, oversized files dropped. Shows the metadata
read from each image and warns about duplicate content.`,
		Example: `  partsnap scan --images ./photos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			seq, err := sequence.FromDir(images)
			if err != nil {
				return fmt.Errorf("failed to scan images: %w", err)
			}

			var total int64
			firstByHash := make(map[string]string)
			var dupes []string
			rows := make([][]string, 0, seq.Len())
			for i, h := range seq.Handles() {
				total += h.Size

				dims := ""
				if h.Meta.Width > 0 {
					dims = fmt.Sprintf("%dx%d", h.Meta.Width, h.Meta.Height)
				}
				captured := ""
				if !h.Meta.CapturedAt.IsZero() {
					captured = h.Meta.CapturedAt.Format("2006-01-02 15:04")
				}
				if first, seen := firstByHash[h.MD5]; seen {
					dupes = append(dupes, fmt.Sprintf("%s has the same content as %s", h.Name, first))
				} else {
					firstByHash[h.MD5] = h.Name
				}

				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					h.Name,
					h.Kind(),
					strconv.FormatInt(h.Size, 10),
					dims,
					captured,
					h.MD5[:8],
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"#", "Name", "Kind", "Bytes", "Dimensions", "Captured", "MD5"}, rows, 1, 4))
			fmt.Fprintf(out, "%d images, %.1f MB\n", seq.Len(), float64(total)/(1<<20))
			for _, d := range dupes {
				fmt.Fprintln(out, "warning: "+d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&images, "images", "", "Folder of photos to scan (required)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	_ = cmd.MarkFlagRequired("images")

	return cmd
}
