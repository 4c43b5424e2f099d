package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/importer"
	"github.com/alexanderramin/mnemo/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer OpObserver
}

func NewImportService(uow db.UnitOfWork, observers ...OpObserver) ImportService {
	return &importService{uow: uow, observer: observerOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, req contract.ImportRequest) (resp *contract.ImportResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "import-export-file",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": req.Path},
		})
	}()

	schema, err := importer.LoadExportSchema(req.Path)
	if err != nil {
		return nil, fmt.Errorf("loading export file: %w", err)
	}
	if errs := importer.ValidateExportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result := importer.ConvertExportSchema(schema, time.Now())

	resp = &contract.ImportResponse{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		items := repository.NewSQLiteReviewItemRepo(tx)
		practice := repository.NewSQLitePracticeLogRepo(tx)

		for _, item := range result.Items {
			if err := items.Create(ctx, item); err != nil {
				if errors.Is(err, repository.ErrAlreadyTracked) {
					resp.SkippedItems++
					continue
				}
				return err
			}
			if len(item.CompletedReviews) > 0 {
				if err := items.AddCompletedReviews(ctx, item.ID, item.CompletedReviews); err != nil {
					return err
				}
			}
			if len(item.CalendarEventIDs) > 0 {
				if err := items.AddCalendarEvents(ctx, item.ID, item.CalendarEventIDs); err != nil {
					return err
				}
			}
			resp.ImportedItems++
		}

		for _, entry := range result.Entries {
			exists, err := practice.ExistsOn(ctx, entry.Slug, entry.LoggedAt)
			if err != nil {
				return err
			}
			if exists {
				resp.SkippedEntries++
				continue
			}
			if err := practice.Create(ctx, entry); err != nil {
				return err
			}
			resp.ImportedEntries++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
