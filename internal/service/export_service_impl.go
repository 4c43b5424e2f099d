package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mnemo/internal/calendar"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/repository"
)

type exportService struct {
	items    repository.ReviewItemRepo
	exporter calendar.Exporter
	observer OpObserver
}

func NewExportService(items repository.ReviewItemRepo, exporter calendar.Exporter, observers ...OpObserver) ExportService {
	return &exportService{
		items:    items,
		exporter: exporter,
		observer: observerOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, req contract.ExportRequest) (resp *contract.ExportResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "export-calendar",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"slug": req.Slug},
		})
	}()

	item, err := s.items.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	path := req.Path
	if path == "" {
		path = req.Slug + ".ics"
	}

	events := calendar.ProjectSchedule(item, req.Occurrences)
	result, err := s.exporter.Export(path, events)
	if err != nil {
		return nil, err
	}

	if len(result.EventIDs) > 0 {
		if err := s.items.AddCalendarEvents(ctx, req.Slug, result.EventIDs); err != nil {
			return nil, err
		}
	}

	return &contract.ExportResponse{
		Path:     result.Path,
		EventIDs: result.EventIDs,
		Skipped:  result.Skipped,
	}, nil
}
