package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a browser-extension storage export (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Import.Import(context.Background(), contract.ImportRequest{Path: args[0]})
			if err != nil {
				return err
			}

			fmt.Printf("%s Imported %s and %d practice record(s)\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(formatter.Plural(resp.ImportedItems, "problem")),
				resp.ImportedEntries)
			if resp.SkippedItems > 0 || resp.SkippedEntries > 0 {
				fmt.Println(formatter.Dim(fmt.Sprintf("  skipped %d already tracked, %d already logged",
					resp.SkippedItems, resp.SkippedEntries)))
			}
			return nil
		},
	}
}
