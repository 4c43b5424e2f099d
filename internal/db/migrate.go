package db

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Migrate runs all schema migrations, then the legacy-record upgrade.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacySchedules(db); err != nil {
		return fmt.Errorf("upgrading legacy schedules: %w", err)
	}
	return nil
}

var migrations = []string{
	// v1 schema: fixed forgetting-curve schedule per item. review_dates holds
	// the precomputed reminder timestamps (epoch millis, comma separated) and
	// current_slot indexes the next pending one.
	`CREATE TABLE IF NOT EXISTS review_items (
		slug       TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		url        TEXT NOT NULL DEFAULT '',
		number     INTEGER NOT NULL DEFAULT 0,
		difficulty TEXT NOT NULL DEFAULT 'unknown'
		           CHECK(difficulty IN ('easy','medium','hard','unknown')),
		added_at     TEXT NOT NULL,
		review_dates TEXT NOT NULL DEFAULT '',
		current_slot INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS review_records (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		slug          TEXT NOT NULL REFERENCES review_items(slug) ON DELETE CASCADE,
		reviewed_at   TEXT NOT NULL,
		rating        INTEGER NOT NULL,
		interval_days INTEGER NOT NULL,
		ease_factor   REAL NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_review_records_slug ON review_records(slug)`,

	`CREATE TABLE IF NOT EXISTS completed_reviews (
		slug         TEXT NOT NULL REFERENCES review_items(slug) ON DELETE CASCADE,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completed_reviews_slug ON completed_reviews(slug)`,

	`CREATE TABLE IF NOT EXISTS review_item_tags (
		slug TEXT NOT NULL REFERENCES review_items(slug) ON DELETE CASCADE,
		tag  TEXT NOT NULL,
		PRIMARY KEY (slug, tag)
	)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		slug     TEXT NOT NULL REFERENCES review_items(slug) ON DELETE CASCADE,
		event_id TEXT NOT NULL,
		PRIMARY KEY (slug, event_id)
	)`,

	`CREATE TABLE IF NOT EXISTS practice_log (
		id           TEXT PRIMARY KEY,
		slug         TEXT NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		solved       INTEGER NOT NULL DEFAULT 1,
		duration_min INTEGER,
		notes        TEXT NOT NULL DEFAULT '',
		logged_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_practice_log_slug ON practice_log(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_practice_log_logged ON practice_log(logged_at)`,

	`CREATE TABLE IF NOT EXISTS practice_log_tags (
		entry_id TEXT NOT NULL REFERENCES practice_log(id) ON DELETE CASCADE,
		tag      TEXT NOT NULL,
		PRIMARY KEY (entry_id, tag)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                  TEXT PRIMARY KEY DEFAULT 'default',
		daily_new           INTEGER NOT NULL DEFAULT 3,
		daily_review        INTEGER NOT NULL DEFAULT 8,
		time_budget_min     INTEGER NOT NULL DEFAULT 45,
		first_interval_days INTEGER NOT NULL DEFAULT 1,
		auto_log_on_add     INTEGER NOT NULL DEFAULT 0
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	// v2 schema: adaptive SM-2 scheduling replaces the fixed schedule.
	// Empty next_review marks a row not yet upgraded.
	`ALTER TABLE review_items ADD COLUMN ease_factor REAL NOT NULL DEFAULT 0`,
	`ALTER TABLE review_items ADD COLUMN interval_days INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE review_items ADD COLUMN next_review TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_review_items_next_review ON review_items(next_review)`,
}

// migrateLegacySchedules backfills SM-2 fields on rows created under the v1
// fixed-schedule layout. The ease factor starts at the default 2.5, the
// interval is derived from the gap around the pending slot, and next_review
// comes from the pending slot itself (or one day out when the fixed schedule
// was exhausted). Idempotent: upgraded rows have a non-empty next_review and
// are never touched again.
func migrateLegacySchedules(db *sql.DB) error {
	ctx := context.Background()

	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_items WHERE next_review = ''`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking legacy rows: %w", err)
	}
	if count == 0 {
		return nil // nothing to upgrade
	}

	rows, err := db.QueryContext(ctx,
		`SELECT slug, review_dates, current_slot FROM review_items WHERE next_review = ''`)
	if err != nil {
		return fmt.Errorf("listing legacy rows: %w", err)
	}

	type upgrade struct {
		slug       string
		interval   int
		nextReview time.Time
	}
	var upgrades []upgrade
	now := time.Now()

	for rows.Next() {
		var slug, datesCSV string
		var slot int
		if err := rows.Scan(&slug, &datesCSV, &slot); err != nil {
			rows.Close()
			return fmt.Errorf("scanning legacy row: %w", err)
		}
		interval, next := deriveLegacySchedule(datesCSV, slot, now)
		upgrades = append(upgrades, upgrade{slug: slug, interval: interval, nextReview: next})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating legacy rows: %w", err)
	}
	rows.Close()

	for _, u := range upgrades {
		_, err := db.ExecContext(ctx,
			`UPDATE review_items SET ease_factor = 2.5, interval_days = ?, next_review = ?
			 WHERE slug = ? AND next_review = ''`,
			u.interval, u.nextReview.Format(time.RFC3339), u.slug)
		if err != nil {
			return fmt.Errorf("upgrading row %s: %w", u.slug, err)
		}
	}
	return nil
}

// deriveLegacySchedule maps a v1 fixed schedule onto SM-2 state. The pending
// slot becomes the next review; the interval is the day gap between the
// pending slot and its predecessor (or 1 for the first slot). An exhausted or
// unparseable schedule falls back to a one-day interval from now.
func deriveLegacySchedule(datesCSV string, slot int, now time.Time) (int, time.Time) {
	dates := parseEpochMillisList(datesCSV)
	if slot < 0 {
		slot = 0
	}
	if len(dates) == 0 || slot >= len(dates) {
		return 1, atReminderHour(now.AddDate(0, 0, 1))
	}

	next := dates[slot]
	interval := 1
	if slot > 0 {
		gap := next.Sub(dates[slot-1]).Hours() / 24
		interval = int(math.Round(gap))
		if interval < 1 {
			interval = 1
		}
	}
	return interval, atReminderHour(next)
}

func parseEpochMillisList(csv string) []time.Time {
	if csv == "" {
		return nil
	}
	var out []time.Time
	for _, part := range strings.Split(csv, ",") {
		ms, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, time.UnixMilli(ms))
	}
	return out
}

func atReminderHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 20, 0, 0, 0, t.Location())
}
