package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/scheduler"
)

type planService struct {
	items    repository.ReviewItemRepo
	practice repository.PracticeLogRepo
	settings repository.SettingsRepo
	observer OpObserver
}

func NewPlanService(items repository.ReviewItemRepo, practice repository.PracticeLogRepo, settings repository.SettingsRepo, observers ...OpObserver) PlanService {
	return &planService{
		items:    items,
		practice: practice,
		settings: settings,
		observer: observerOrNoop(observers),
	}
}

func (s *planService) GetDailyPlan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "daily-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	now := resolveNow(req.Now)
	var warnings []string

	goals := domain.DefaultGoals()
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		warnings = append(warnings, "no saved goals, using defaults")
	} else {
		goals = cfg.Goals
	}

	due, err := s.items.ListDue(ctx, dueCutoff(now))
	if err != nil {
		return nil, err
	}
	all, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	todayEntries, err := s.practice.ListOn(ctx, now)
	if err != nil {
		return nil, err
	}

	plan := scheduler.Plan(scheduler.PlanInput{
		Goals:              goals,
		DueItems:           due,
		TodayPracticeCount: len(todayEntries),
		TodayCompleted:     countCompletedOn(all, now),
		WeakTags:           scheduler.WeakTags(all),
		Now:                now,
	})

	return &contract.PlanResponse{
		GeneratedAt: now,
		Plan:        plan,
		Warnings:    warnings,
	}, nil
}

func (s *planService) Due(ctx context.Context, req contract.DueRequest) (*contract.DueResponse, error) {
	now := resolveNow(req.Now)

	due, err := s.items.ListDue(ctx, dueCutoff(now))
	if err != nil {
		return nil, err
	}

	overdue := 0
	for _, item := range due {
		if item.Overdue(now) {
			overdue++
		}
	}

	queue := scheduler.Rank(due, now)
	if req.Limit > 0 && len(queue) > req.Limit {
		queue = queue[:req.Limit]
	}

	return &contract.DueResponse{
		GeneratedAt:  now,
		DueCount:     len(due),
		OverdueCount: overdue,
		Queue:        queue,
	}, nil
}
