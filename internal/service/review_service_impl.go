package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/notify"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/alexanderramin/mnemo/internal/scheduler"
	"github.com/alexanderramin/mnemo/internal/tags"
	"github.com/google/uuid"
)

type reviewService struct {
	items    repository.ReviewItemRepo
	practice repository.PracticeLogRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	fetcher  tags.Fetcher
	notifier notify.Notifier
	observer OpObserver

	// itemLocks serializes rating updates per slug so concurrent rates of
	// the same item apply one at a time instead of clobbering each other.
	mu        sync.Mutex
	itemLocks map[string]*sync.Mutex
}

func NewReviewService(
	items repository.ReviewItemRepo,
	practice repository.PracticeLogRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	fetcher tags.Fetcher,
	notifier notify.Notifier,
	observers ...OpObserver,
) ReviewService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &reviewService{
		items:     items,
		practice:  practice,
		settings:  settings,
		uow:       uow,
		fetcher:   fetcher,
		notifier:  notifier,
		observer:  observerOrNoop(observers),
		itemLocks: make(map[string]*sync.Mutex),
	}
}

func (s *reviewService) lockFor(slug string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.itemLocks[slug]
	if !ok {
		l = &sync.Mutex{}
		s.itemLocks[slug] = l
	}
	return l
}

func (s *reviewService) Add(ctx context.Context, req contract.AddRequest) (resp *contract.AddResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "add-item",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"slug": req.Slug},
		})
	}()

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, &contract.AddError{Code: contract.ErrInvalidSlug, Message: "slug is required"}
	}
	now := resolveNow(req.Now)

	cfg, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	title := req.Title
	number := req.Number
	difficulty := req.Difficulty
	itemTags := req.Tags
	fetched := false
	if s.fetcher != nil && (title == "" || len(itemTags) == 0) {
		// Best effort: a dead endpoint just means sparse metadata.
		if meta, ferr := s.fetcher.Fetch(ctx, slug); ferr == nil {
			if title == "" {
				title = meta.Title
			}
			if number == 0 {
				number = meta.Number
			}
			if difficulty == "" {
				difficulty = domain.NormalizeDifficulty(meta.Difficulty)
			}
			if len(itemTags) == 0 {
				itemTags = meta.Tags
			}
			fetched = true
		}
	}
	if title == "" {
		title = slug
	}
	url := req.URL
	if url == "" {
		url = "https://leetcode.com/problems/" + slug + "/"
	}

	item := domain.NewReviewItem(slug, title, url, number, difficulty, itemTags, cfg.FirstIntervalDays, now)

	autoLogged := false
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteReviewItemRepo(tx)
		txPractice := repository.NewSQLitePracticeLogRepo(tx)

		if err := txItems.Create(ctx, item); err != nil {
			return err
		}

		if cfg.AutoLogOnAdd {
			exists, err := txPractice.ExistsOn(ctx, slug, now)
			if err != nil {
				return err
			}
			if !exists {
				entry := &domain.PracticeLogEntry{
					ID:       uuid.New().String(),
					Slug:     slug,
					Title:    title,
					Solved:   true,
					Tags:     itemTags,
					LoggedAt: now,
				}
				if err := txPractice.Create(ctx, entry); err != nil {
					return err
				}
				autoLogged = true
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyTracked) {
			return nil, &contract.AddError{
				Code:    contract.ErrAlreadyTracked,
				Message: fmt.Sprintf("%s is already being tracked", slug),
			}
		}
		return nil, err
	}

	return &contract.AddResponse{Item: item, AutoLogged: autoLogged, TagsFetched: fetched}, nil
}

func (s *reviewService) Rate(ctx context.Context, req contract.RateRequest) (resp *contract.RateResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveOp(ctx, OpEvent{
			Name:      "rate-item",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"slug": req.Slug, "rating": int(req.Rating)},
		})
	}()

	lock := s.lockFor(req.Slug)
	lock.Lock()
	defer lock.Unlock()

	now := resolveNow(req.Now)
	var result scheduler.IntervalResult

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteReviewItemRepo(tx)

		item, err := txItems.GetBySlug(ctx, req.Slug)
		if err != nil {
			return err
		}

		result = scheduler.ComputeNext(item, req.Rating, now)
		item.EaseFactor = result.EaseFactor
		item.IntervalDays = result.IntervalDays
		item.NextReview = result.NextReview
		item.UpdatedAt = now.UTC()

		if err := txItems.Update(ctx, item); err != nil {
			return err
		}
		return txItems.AppendReview(ctx, req.Slug, domain.ReviewRecord{
			Date:         now,
			Rating:       req.Rating,
			IntervalDays: result.IntervalDays,
			EaseFactor:   result.EaseFactor,
		})
	})
	if err != nil {
		return nil, err
	}

	notified := s.notifier.Notify("Review recorded",
		fmt.Sprintf("%s: next review in %d day(s)", req.Slug, result.IntervalDays)) == nil

	return &contract.RateResponse{
		Slug:         req.Slug,
		Rating:       req.Rating,
		IntervalDays: result.IntervalDays,
		EaseFactor:   result.EaseFactor,
		NextReview:   result.NextReview,
		Notified:     notified,
	}, nil
}

func (s *reviewService) Status(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	now := resolveNow(req.Now)

	item, err := s.items.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &contract.StatusResponse{Tracked: false}, nil
		}
		return nil, err
	}

	loggedToday, err := s.practice.ExistsOn(ctx, req.Slug, now)
	if err != nil {
		return nil, err
	}

	return &contract.StatusResponse{
		Tracked:       true,
		Item:          item,
		DueNow:        item.DueBy(now),
		Overdue:       item.Overdue(now),
		PriorityScore: scheduler.PriorityScore(item, now),
		LoggedToday:   loggedToday,
	}, nil
}

func (s *reviewService) List(ctx context.Context) ([]*domain.ReviewItem, error) {
	return s.items.List(ctx)
}

func (s *reviewService) Delete(ctx context.Context, slug string) error {
	return s.items.Delete(ctx, slug)
}

func (s *reviewService) loadSettings(ctx context.Context) (*domain.Settings, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, err
	}
	return cfg, nil
}
