package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/scheduler"
)

type statsService struct {
	items    repository.ReviewItemRepo
	practice repository.PracticeLogRepo
	observer OpObserver
}

func NewStatsService(items repository.ReviewItemRepo, practice repository.PracticeLogRepo, observers ...OpObserver) StatsService {
	return &statsService{
		items:    items,
		practice: practice,
		observer: observerOrNoop(observers),
	}
}

func (s *statsService) GetStats(ctx context.Context, req contract.StatsRequest) (resp *contract.StatsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "stats",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	now := resolveNow(req.Now)

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.practice.List(ctx)
	if err != nil {
		return nil, err
	}

	dueCount := 0
	for _, item := range items {
		if item.DueBy(now) {
			dueCount++
		}
	}

	return &contract.StatsResponse{
		GeneratedAt: now,
		Streak:      scheduler.ComputeStreak(collectActivity(items, entries), collectRatings(items), now),
		WeakTags:    scheduler.WeakTags(items),
		TotalItems:  len(items),
		DueCount:    dueCount,
	}, nil
}
