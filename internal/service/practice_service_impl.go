package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/google/uuid"
)

type practiceService struct {
	practice repository.PracticeLogRepo
	items    repository.ReviewItemRepo
	observer OpObserver
}

func NewPracticeService(practice repository.PracticeLogRepo, items repository.ReviewItemRepo, observers ...OpObserver) PracticeService {
	return &practiceService{
		practice: practice,
		items:    items,
		observer: observerOrNoop(observers),
	}
}

func (s *practiceService) Log(ctx context.Context, req contract.LogRequest) (resp *contract.LogResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "log-practice",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"slug": req.Slug},
		})
	}()

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, &contract.LogError{Code: contract.ErrInvalidLogSlug, Message: "slug is required"}
	}
	now := resolveNow(req.Now)

	exists, err := s.practice.ExistsOn(ctx, slug, now)
	if err != nil {
		return nil, err
	}
	if exists {
		// One entry per slug per day; a repeat is a rejected result, not
		// a failure.
		return &contract.LogResponse{Success: false, ErrorCode: contract.ErrDuplicateLog}, nil
	}

	title := req.Title
	if title == "" {
		title = slug
	}
	entry := &domain.PracticeLogEntry{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       title,
		Solved:      req.Solved,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
		Tags:        req.Tags,
		LoggedAt:    now,
	}
	if err := s.practice.Create(ctx, entry); err != nil {
		return nil, err
	}
	return &contract.LogResponse{Success: true, Entry: entry}, nil
}

func (s *practiceService) ListToday(ctx context.Context) ([]*domain.PracticeLogEntry, error) {
	return s.practice.ListOn(ctx, time.Now())
}

func (s *practiceService) TagStats(ctx context.Context, req contract.TagsRequest) (*contract.TagsResponse, error) {
	now := resolveNow(req.Now)

	todayEntries, err := s.practice.ListOn(ctx, now)
	if err != nil {
		return nil, err
	}
	allEntries, err := s.practice.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	todayLists := make([][]string, 0, len(todayEntries))
	for _, e := range todayEntries {
		todayLists = append(todayLists, e.Tags)
	}
	allLists := make([][]string, 0, len(allEntries)+len(items))
	for _, e := range allEntries {
		allLists = append(allLists, e.Tags)
	}
	for _, item := range items {
		allLists = append(allLists, item.Tags)
	}

	return &contract.TagsResponse{
		Today: countTags(todayLists...),
		All:   countTags(allLists...),
	}, nil
}
