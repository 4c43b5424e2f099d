package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT id, daily_new, daily_review, time_budget_min, first_interval_days, auto_log_on_add
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var autoLogInt int
	err := row.Scan(
		&s.ID,
		&s.Goals.DailyNew,
		&s.Goals.DailyReview,
		&s.Goals.TimeBudgetMin,
		&s.FirstIntervalDays,
		&autoLogInt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.AutoLogOnAdd = intToBool(autoLogInt)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	if s.ID == "" {
		s.ID = "default"
	}
	s.Normalize()
	query := `INSERT OR REPLACE INTO settings (id, daily_new, daily_review, time_budget_min,
		first_interval_days, auto_log_on_add)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Goals.DailyNew,
		s.Goals.DailyReview,
		s.Goals.TimeBudgetMin,
		s.FirstIntervalDays,
		boolToInt(s.AutoLogOnAdd),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
