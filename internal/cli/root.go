package cli

import (
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reviews  service.ReviewService
	Practice service.PracticeService
	Plans    service.PlanService
	Stats    service.StatsService
	Exports  service.ExportService
	Import   service.ImportService
	Settings service.SettingsService

	// IsInteractive gates forms and the review TUI; nil means
	// non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "mnemo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mnemo",
		Short: "Adaptive spaced-repetition scheduler for coding problems",
	}

	root.AddCommand(
		newAddCmd(app),
		newRateCmd(app),
		newReviewCmd(app),
		newLogCmd(app),
		newPlanCmd(app),
		newDueCmd(app),
		newStatusCmd(app),
		newStatsCmd(app),
		newTagsCmd(app),
		newGoalsCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
