package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var title, url, difficulty string
	var number int
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <slug>",
		Short: "Track a problem for spaced review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.AddRequest{
				Slug:   args[0],
				Title:  title,
				URL:    url,
				Number: number,
				Tags:   tags,
			}
			if difficulty != "" {
				req.Difficulty = domain.NormalizeDifficulty(difficulty)
			}

			// With no metadata flags in an interactive terminal, ask.
			if title == "" && difficulty == "" && len(tags) == 0 && app.interactive() {
				if err := runAddForm(&req); err != nil {
					return err
				}
			}

			resp, err := app.Reviews.Add(context.Background(), req)
			if err != nil {
				var addErr *contract.AddError
				if errors.As(err, &addErr) && addErr.Code == contract.ErrAlreadyTracked {
					fmt.Println(formatter.Dim(addErr.Message + ". Did you mean 'mnemo rate'?"))
					return nil
				}
				return err
			}

			fmt.Print(formatter.FormatAdded(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Problem title (fetched if omitted)")
	cmd.Flags().StringVar(&url, "url", "", "Problem URL")
	cmd.Flags().IntVar(&number, "number", 0, "Problem number")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated topic tags")

	return cmd
}

func runAddForm(req *contract.AddRequest) error {
	var difficulty string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder(req.Slug).
				Value(&req.Title),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Fetch automatically", ""),
					huh.NewOption("Easy", "easy"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Hard", "hard"),
				).
				Value(&difficulty),
		),
	).WithTheme(mnemoHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	if difficulty != "" {
		req.Difficulty = domain.NormalizeDifficulty(difficulty)
	}
	return nil
}
