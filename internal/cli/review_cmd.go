package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Work through today's due queue interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plans.Due(context.Background(), contract.DueRequest{Limit: limit})
			if err != nil {
				return err
			}
			if resp.DueCount == 0 {
				fmt.Println(formatter.StyleGreen.Render("All caught up."))
				return nil
			}

			if !app.interactive() {
				// No terminal: show the queue and the rate command instead.
				fmt.Print(formatter.FormatDue(resp))
				fmt.Println(formatter.Dim("Rate items with 'mnemo rate <slug> <rating>'."))
				return nil
			}

			model := newReviewModel(app, resp.Queue)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(reviewModel); ok {
				fmt.Print(m.summary())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Review at most this many items (0 = all)")
	return cmd
}
