package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var title, notes string
	var duration int
	var unsolved bool
	var tags []string

	cmd := &cobra.Command{
		Use:   "log <slug>",
		Short: "Record a practice attempt outside the review schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.LogRequest{
				Slug:   args[0],
				Title:  title,
				Solved: !unsolved,
				Notes:  notes,
				Tags:   tags,
			}
			if cmd.Flags().Changed("minutes") {
				req.DurationMin = &duration
			}

			resp, err := app.Practice.Log(context.Background(), req)
			if err != nil {
				return err
			}
			if !resp.Success {
				fmt.Println(formatter.Dim(fmt.Sprintf("%s is already logged for today.", args[0])))
				return nil
			}

			fmt.Printf("%s Logged %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(resp.Entry.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Problem title")
	cmd.Flags().IntVar(&duration, "minutes", 0, "Time spent in minutes")
	cmd.Flags().BoolVar(&unsolved, "unsolved", false, "Mark the attempt as unsolved")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated topic tags")

	return cmd
}
