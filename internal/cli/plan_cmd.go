package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show today's review plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plans.GetDailyPlan(context.Background(), contract.PlanRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}
}

func newDueCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List due items ranked by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plans.Due(context.Background(), contract.DueRequest{Limit: limit})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDue(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many items (0 = all)")
	return cmd
}
