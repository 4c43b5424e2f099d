package service

import (
	"context"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
)

type ReviewService interface {
	Add(ctx context.Context, req contract.AddRequest) (*contract.AddResponse, error)
	Rate(ctx context.Context, req contract.RateRequest) (*contract.RateResponse, error)
	Status(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
	List(ctx context.Context) ([]*domain.ReviewItem, error)
	Delete(ctx context.Context, slug string) error
}

type PracticeService interface {
	Log(ctx context.Context, req contract.LogRequest) (*contract.LogResponse, error)
	ListToday(ctx context.Context) ([]*domain.PracticeLogEntry, error)
	TagStats(ctx context.Context, req contract.TagsRequest) (*contract.TagsResponse, error)
}

type PlanService interface {
	GetDailyPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	Due(ctx context.Context, req contract.DueRequest) (*contract.DueResponse, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req contract.StatsRequest) (*contract.StatsResponse, error)
}

type ExportService interface {
	Export(ctx context.Context, req contract.ExportRequest) (*contract.ExportResponse, error)
}

// ImportService loads browser-extension storage exports into the store.
type ImportService interface {
	Import(ctx context.Context, req contract.ImportRequest) (*contract.ImportResponse, error)
}

// SettingsUpdate carries optional settings changes; nil fields keep the
// stored value.
type SettingsUpdate struct {
	DailyNew          *int
	DailyReview       *int
	TimeBudgetMin     *int
	FirstIntervalDays *int
	AutoLogOnAdd      *bool
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, update SettingsUpdate) (*domain.Settings, error)
}
