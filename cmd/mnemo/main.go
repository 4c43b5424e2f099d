package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mnemo/internal/calendar"
	"github.com/alexanderramin/mnemo/internal/cli"
	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/notify"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/service"
	"github.com/alexanderramin/mnemo/internal/tags"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.mnemo/mnemo.db
	dbPath := os.Getenv("MNEMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mnemo", "mnemo.db")
	}

	// Open database (runs migrations, including the legacy fixed-schedule
	// upgrade, on first touch).
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteReviewItemRepo(database)
	practiceRepo := repository.NewSQLitePracticeLogRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Problem metadata comes from the public GraphQL endpoint unless
	// overridden (tests point this at a local server).
	fetcher := tags.NewHTTPFetcher(os.Getenv("MNEMO_GRAPHQL"))
	notifier := notify.NewWriterNotifier(os.Stdout)
	exporter := calendar.NewICSExporter()

	var observers []service.OpObserver
	if os.Getenv("MNEMO_DEBUG") != "" {
		observers = append(observers, service.NewLogObserver(os.Stderr))
	}

	app := &cli.App{
		Reviews:  service.NewReviewService(itemRepo, practiceRepo, settingsRepo, uow, fetcher, notifier, observers...),
		Practice: service.NewPracticeService(practiceRepo, itemRepo, observers...),
		Plans:    service.NewPlanService(itemRepo, practiceRepo, settingsRepo, observers...),
		Stats:    service.NewStatsService(itemRepo, practiceRepo, observers...),
		Exports:  service.NewExportService(itemRepo, exporter, observers...),
		Import:   service.NewImportService(uow, observers...),
		Settings: service.NewSettingsService(settingsRepo),
	}

	// Detect interactive terminal for the add form and review session.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
