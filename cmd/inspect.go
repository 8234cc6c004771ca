package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"partsnap/internal/lookup"
)

func newInspectCmd() *cobra.Command {
	var workbook string
	var limit int
	var interactive bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the lookup tables parsed from a workbook",
		Long: `Loads the workbook the same way review does and prints the material,
processing and implementer tables. Useful for checking sheet and column
detection before a review session.`,
		Example: `  # Print all three tables
  partsnap inspect --workbook parts.xlsx

  # Large workbook: first 20 rows per table, pausing between tables
  partsnap inspect --workbook ./tables --limit 20 --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			tables, err := lookup.NewLoader(workbook).Load()
			if err != nil {
				return fmt.Errorf("failed to load lookup tables: %w", err)
			}

			out := cmd.OutOrStdout()
			pause := func() {}
			if interactive {
				reader := bufio.NewReader(cmd.InOrStdin())
				pause = func() {
					fmt.Fprint(out, "Press Enter to continue...")
					_, _ = reader.ReadString('\n')
					fmt.Fprintln(out)
				}
			}

			materialRows := make([][]string, 0, tables.Material.Len())
			for _, category := range tables.Categories.Categories() {
				for _, name := range tables.Categories.Materials(category) {
					id, _ := tables.Material.Resolve(name)
					materialRows = append(materialRows, []string{name, id, category})
				}
			}
			fmt.Fprintf(out, "Materials (%d)\n", tables.Material.Len())
			fmt.Fprintln(out, renderTable([]string{"Name", "ID", "Category"}, capRows(materialRows, limit)))
			pause()

			fmt.Fprintf(out, "\nProcessing methods (%d)\n", tables.Processing.Len())
			fmt.Fprintln(out, renderTable([]string{"Name", "ID"}, capRows(tableRows(tables.Processing), limit)))

			if tables.Implementer.Len() == 0 {
				fmt.Fprintln(out, "\nNo implementer rows; review needs a profile with require_implementer: false")
				return nil
			}
			pause()
			fmt.Fprintf(out, "\nImplementers (%d)\n", tables.Implementer.Len())
			fmt.Fprintln(out, renderTable([]string{"Name", "ID"}, capRows(tableRows(tables.Implementer), limit)))

			return nil
		},
	}

	cmd.Flags().StringVar(&workbook, "workbook", "", "Path to the lookup workbook: xlsx, parquet, or a directory of csv files (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max rows to print per table (0 for all)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pause after each table (press Enter to continue)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	_ = cmd.MarkFlagRequired("workbook")

	return cmd
}

func tableRows(t *lookup.Table) [][]string {
	rows := make([][]string, 0, t.Len())
	for _, name := range t.Names() {
		id, _ := t.Resolve(name)
		rows = append(rows, []string{name, id})
	}
	return rows
}

// capRows truncates table rows when limit is positive. The count in the
// heading above each table still shows the full total.
func capRows(rows [][]string, limit int) [][]string {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
