package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var path string
	var occurrences int

	cmd := &cobra.Command{
		Use:   "export <slug>",
		Short: "Write upcoming reviews to an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Exports.Export(context.Background(), contract.ExportRequest{
				Slug:        args[0],
				Path:        path,
				Occurrences: occurrences,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s Wrote %s to %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(formatter.Plural(len(resp.EventIDs), "event")),
				formatter.Bold(resp.Path))
			if resp.Skipped > 0 {
				fmt.Println(formatter.Dim(fmt.Sprintf("  skipped %d malformed occurrence(s)", resp.Skipped)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "out", "", "Output .ics path (default <slug>.ics)")
	cmd.Flags().IntVar(&occurrences, "count", 5, "Number of future occurrences to export")

	return cmd
}
