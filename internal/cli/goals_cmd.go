package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newGoalsCmd(app *App) *cobra.Command {
	var dailyNew, dailyReview, timeBudget, firstInterval int
	var autoLog bool

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or change daily goals and scheduler settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			update := service.SettingsUpdate{}
			changed := false
			cmd.Flags().Visit(func(f *pflag.Flag) {
				changed = true
				switch f.Name {
				case "new":
					update.DailyNew = &dailyNew
				case "reviews":
					update.DailyReview = &dailyReview
				case "budget":
					update.TimeBudgetMin = &timeBudget
				case "first-interval":
					update.FirstIntervalDays = &firstInterval
				case "auto-log":
					update.AutoLogOnAdd = &autoLog
				}
			})

			if changed {
				cfg, err := app.Settings.Update(ctx, update)
				if err != nil {
					return err
				}
				fmt.Println(formatter.StyleGreen.Render("✔") + " Goals updated")
				printSettings(cfg.Goals.DailyNew, cfg.Goals.DailyReview, cfg.Goals.TimeBudgetMin,
					cfg.FirstIntervalDays, cfg.AutoLogOnAdd)
				return nil
			}

			cfg, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Goals"))
			printSettings(cfg.Goals.DailyNew, cfg.Goals.DailyReview, cfg.Goals.TimeBudgetMin,
				cfg.FirstIntervalDays, cfg.AutoLogOnAdd)
			return nil
		},
	}

	cmd.Flags().IntVar(&dailyNew, "new", 0, "New problems per day")
	cmd.Flags().IntVar(&dailyReview, "reviews", 0, "Reviews per day")
	cmd.Flags().IntVar(&timeBudget, "budget", 0, "Daily time budget in minutes")
	cmd.Flags().IntVar(&firstInterval, "first-interval", 0, "Days before the first review (1-30)")
	cmd.Flags().BoolVar(&autoLog, "auto-log", false, "Log practice automatically when adding")

	return cmd
}

func printSettings(dailyNew, dailyReview, budget, firstInterval int, autoLog bool) {
	fmt.Printf("  %s new problems/day\n", formatter.Bold(fmt.Sprintf("%d", dailyNew)))
	fmt.Printf("  %s reviews/day\n", formatter.Bold(fmt.Sprintf("%d", dailyReview)))
	fmt.Printf("  %s time budget\n", formatter.Bold(formatter.FormatMinutes(budget)))
	fmt.Printf("  first review after %s\n", formatter.Bold(formatter.Plural(firstInterval, "day")))
	fmt.Printf("  auto-log on add: %s\n", formatter.Bold(fmt.Sprintf("%v", autoLog)))
}
