package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *settingsService) Update(ctx context.Context, update SettingsUpdate) (*domain.Settings, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	cfg.Goals.DailyNew = domain.IntFromPtrWithDefault(cfg.Goals.DailyNew, update.DailyNew)
	cfg.Goals.DailyReview = domain.IntFromPtrWithDefault(cfg.Goals.DailyReview, update.DailyReview)
	cfg.Goals.TimeBudgetMin = domain.IntFromPtrWithDefault(cfg.Goals.TimeBudgetMin, update.TimeBudgetMin)
	cfg.FirstIntervalDays = domain.IntFromPtrWithDefault(cfg.FirstIntervalDays, update.FirstIntervalDays)
	cfg.AutoLogOnAdd = domain.BoolFromPtrWithDefault(cfg.AutoLogOnAdd, update.AutoLogOnAdd)

	if err := s.settings.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
