package repository

import (
	"context"
	"database/sql"
	"fmt"

	"time"

	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/domain"
)

// SQLitePracticeLogRepo implements PracticeLogRepo using a SQLite database.
type SQLitePracticeLogRepo struct {
	db db.DBTX
}

// NewSQLitePracticeLogRepo creates a new SQLitePracticeLogRepo.
func NewSQLitePracticeLogRepo(conn db.DBTX) *SQLitePracticeLogRepo {
	return &SQLitePracticeLogRepo{db: conn}
}

func (r *SQLitePracticeLogRepo) Create(ctx context.Context, entry *domain.PracticeLogEntry) error {
	query := `INSERT INTO practice_log (id, slug, title, solved, duration_min, notes, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Slug,
		entry.Title,
		boolToInt(entry.Solved),
		nullableIntToValue(entry.DurationMin),
		entry.Notes,
		storeTime(entry.LoggedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting practice log entry: %w", err)
	}

	for _, tag := range entry.Tags {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO practice_log_tags (entry_id, tag) VALUES (?, ?)`,
			entry.ID, tag); err != nil {
			return fmt.Errorf("inserting practice log tag: %w", err)
		}
	}
	return nil
}

func (r *SQLitePracticeLogRepo) ExistsOn(ctx context.Context, slug string, t time.Time) (bool, error) {
	from, to := dayBounds(t)
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM practice_log WHERE slug = ? AND logged_at >= ? AND logged_at < ?`,
		slug, from, to).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking practice log for %s: %w", slug, err)
	}
	return count > 0, nil
}

func (r *SQLitePracticeLogRepo) ListOn(ctx context.Context, t time.Time) ([]*domain.PracticeLogEntry, error) {
	from, to := dayBounds(t)
	query := `SELECT id, slug, title, solved, duration_min, notes, logged_at
		FROM practice_log WHERE logged_at >= ? AND logged_at < ? ORDER BY logged_at`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing practice log for day: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLitePracticeLogRepo) List(ctx context.Context) ([]*domain.PracticeLogEntry, error) {
	query := `SELECT id, slug, title, solved, duration_min, notes, logged_at
		FROM practice_log ORDER BY logged_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing practice log: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLitePracticeLogRepo) scanEntries(ctx context.Context, rows *sql.Rows) ([]*domain.PracticeLogEntry, error) {
	var entries []*domain.PracticeLogEntry
	for rows.Next() {
		var e domain.PracticeLogEntry
		var solvedInt int
		var durationCol sql.NullInt64
		var loggedAtStr string

		if err := rows.Scan(&e.ID, &e.Slug, &e.Title, &solvedInt, &durationCol, &e.Notes, &loggedAtStr); err != nil {
			return nil, fmt.Errorf("scanning practice log entry: %w", err)
		}
		e.Solved = intToBool(solvedInt)
		e.DurationMin = nullableIntFromColumn(durationCol)
		e.LoggedAt = parseStoredTime(loggedAtStr)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating practice log entries: %w", err)
	}

	for _, e := range entries {
		tagRows, err := r.db.QueryContext(ctx,
			`SELECT tag FROM practice_log_tags WHERE entry_id = ? ORDER BY tag`, e.ID)
		if err != nil {
			return nil, fmt.Errorf("listing practice log tags: %w", err)
		}
		for tagRows.Next() {
			var tag string
			if err := tagRows.Scan(&tag); err != nil {
				tagRows.Close()
				return nil, fmt.Errorf("scanning practice log tag: %w", err)
			}
			e.Tags = append(e.Tags, tag)
		}
		if err := tagRows.Err(); err != nil {
			tagRows.Close()
			return nil, fmt.Errorf("iterating practice log tags: %w", err)
		}
		tagRows.Close()
	}
	return entries, nil
}

// dayBounds returns the stored-form bounds of the local calendar day
// containing t.
func dayBounds(t time.Time) (string, string) {
	day := domain.StartOfDay(t)
	return storeTime(day), storeTime(day.AddDate(0, 0, 1))
}
