package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <slug>",
		Short: "Show one problem's scheduling state and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reviews.Status(context.Background(), contract.StatusRequest{Slug: args[0]})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks, success rate and weak tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Stats.GetStats(context.Background(), contract.StatsRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(resp))
			return nil
		},
	}
}

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show tag distribution for today and all time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Practice.TagStats(context.Background(), contract.TagsRequest{})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTags(resp))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slug>",
		Short: "Stop tracking a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reviews.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Deleted %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(args[0]))
			return nil
		},
	}
}
