package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <slug> <forgot|hard|good|easy>",
		Short: "Record a completed review with its recall quality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, ok := domain.ParseRating(args[1])
			if !ok {
				return fmt.Errorf("unknown rating %q (use forgot, hard, good or easy)", args[1])
			}

			resp, err := app.Reviews.Rate(context.Background(), contract.RateRequest{
				Slug:   args[0],
				Rating: rating,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRateOutcome(resp))
			return nil
		},
	}
}
