package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/mnemo/internal/db"
	"github.com/alexanderramin/mnemo/internal/domain"
)

// reviewItemColumns is the canonical SELECT column list for review_items.
const reviewItemColumns = `slug, title, url, number, difficulty, added_at,
		ease_factor, interval_days, next_review, created_at, updated_at`

// SQLiteReviewItemRepo implements ReviewItemRepo using a SQLite database.
type SQLiteReviewItemRepo struct {
	db db.DBTX
}

// NewSQLiteReviewItemRepo creates a new SQLiteReviewItemRepo.
func NewSQLiteReviewItemRepo(conn db.DBTX) *SQLiteReviewItemRepo {
	return &SQLiteReviewItemRepo{db: conn}
}

func (r *SQLiteReviewItemRepo) Create(ctx context.Context, item *domain.ReviewItem) error {
	query := `INSERT INTO review_items (slug, title, url, number, difficulty, added_at,
		ease_factor, interval_days, next_review, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.URL,
		item.Number,
		string(item.Difficulty),
		storeTime(item.AddedAt),
		item.EaseFactor,
		item.IntervalDays,
		storeTime(item.NextReview),
		storeTime(item.CreatedAt),
		storeTime(item.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("review item %s: %w", item.ID, ErrAlreadyTracked)
		}
		return fmt.Errorf("inserting review item: %w", err)
	}
	if err := r.SetTags(ctx, item.ID, item.Tags); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteReviewItemRepo) GetBySlug(ctx context.Context, slug string) (*domain.ReviewItem, error) {
	query := `SELECT ` + reviewItemColumns + ` FROM review_items WHERE slug = ?`
	row := r.db.QueryRowContext(ctx, query, slug)

	item, err := r.scanReviewItem(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadAttachments(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *SQLiteReviewItemRepo) List(ctx context.Context) ([]*domain.ReviewItem, error) {
	query := `SELECT ` + reviewItemColumns + ` FROM review_items ORDER BY added_at`
	return r.listItems(ctx, query)
}

func (r *SQLiteReviewItemRepo) ListDue(ctx context.Context, before time.Time) ([]*domain.ReviewItem, error) {
	query := `SELECT ` + reviewItemColumns + ` FROM review_items
		WHERE next_review < ? ORDER BY next_review`
	return r.listItems(ctx, query, storeTime(before))
}

func (r *SQLiteReviewItemRepo) listItems(ctx context.Context, query string, args ...any) ([]*domain.ReviewItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing review items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ReviewItem
	for rows.Next() {
		item, err := r.scanReviewItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review items: %w", err)
	}

	for _, item := range items {
		if err := r.loadAttachments(ctx, item); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *SQLiteReviewItemRepo) Update(ctx context.Context, item *domain.ReviewItem) error {
	query := `UPDATE review_items SET title = ?, url = ?, number = ?, difficulty = ?,
		ease_factor = ?, interval_days = ?, next_review = ?, updated_at = ?
		WHERE slug = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.URL,
		item.Number,
		string(item.Difficulty),
		item.EaseFactor,
		item.IntervalDays,
		storeTime(item.NextReview),
		storeTime(item.UpdatedAt),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating review item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("review item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteReviewItemRepo) AppendReview(ctx context.Context, slug string, rec domain.ReviewRecord) error {
	query := `INSERT INTO review_records (slug, reviewed_at, rating, interval_days, ease_factor)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		slug,
		storeTime(rec.Date),
		int(rec.Rating),
		rec.IntervalDays,
		rec.EaseFactor,
	)
	if err != nil {
		return fmt.Errorf("inserting review record: %w", err)
	}

	// Parallel fast index over the same events.
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO completed_reviews (slug, completed_at) VALUES (?, ?)`,
		slug, storeTime(rec.Date))
	if err != nil {
		return fmt.Errorf("inserting completed review: %w", err)
	}
	return nil
}

func (r *SQLiteReviewItemRepo) SetTags(ctx context.Context, slug string, tags []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM review_item_tags WHERE slug = ?`, slug); err != nil {
		return fmt.Errorf("clearing review item tags: %w", err)
	}
	for _, tag := range tags {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO review_item_tags (slug, tag) VALUES (?, ?)`, slug, tag); err != nil {
			return fmt.Errorf("inserting review item tag: %w", err)
		}
	}
	return nil
}

func (r *SQLiteReviewItemRepo) AddCompletedReviews(ctx context.Context, slug string, times []time.Time) error {
	for _, t := range times {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO completed_reviews (slug, completed_at) VALUES (?, ?)`, slug, storeTime(t)); err != nil {
			return fmt.Errorf("inserting completed review: %w", err)
		}
	}
	return nil
}

func (r *SQLiteReviewItemRepo) AddCalendarEvents(ctx context.Context, slug string, eventIDs []string) error {
	for _, id := range eventIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO calendar_events (slug, event_id) VALUES (?, ?)`, slug, id); err != nil {
			return fmt.Errorf("inserting calendar event: %w", err)
		}
	}
	return nil
}

func (r *SQLiteReviewItemRepo) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review_items WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("deleting review item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("review item %s: %w", slug, ErrNotFound)
	}
	return nil
}

// scanReviewItem scans a single review item from a *sql.Row.
func (r *SQLiteReviewItemRepo) scanReviewItem(row *sql.Row) (*domain.ReviewItem, error) {
	var item domain.ReviewItem
	var difficultyStr, addedAtStr, nextReviewStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&item.ID, &item.Title, &item.URL, &item.Number, &difficultyStr, &addedAtStr,
		&item.EaseFactor, &item.IntervalDays, &nextReviewStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("review item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning review item: %w", err)
	}

	populateReviewItem(&item, difficultyStr, addedAtStr, nextReviewStr, createdAtStr, updatedAtStr)
	return &item, nil
}

// scanReviewItemRow scans one review item from *sql.Rows.
func (r *SQLiteReviewItemRepo) scanReviewItemRow(rows *sql.Rows) (*domain.ReviewItem, error) {
	var item domain.ReviewItem
	var difficultyStr, addedAtStr, nextReviewStr, createdAtStr, updatedAtStr string

	err := rows.Scan(
		&item.ID, &item.Title, &item.URL, &item.Number, &difficultyStr, &addedAtStr,
		&item.EaseFactor, &item.IntervalDays, &nextReviewStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning review item row: %w", err)
	}

	populateReviewItem(&item, difficultyStr, addedAtStr, nextReviewStr, createdAtStr, updatedAtStr)
	return &item, nil
}

func populateReviewItem(item *domain.ReviewItem, difficultyStr, addedAtStr, nextReviewStr, createdAtStr, updatedAtStr string) {
	item.Difficulty = domain.Difficulty(difficultyStr)
	item.AddedAt = parseStoredTime(addedAtStr)
	item.NextReview = parseStoredTime(nextReviewStr)
	item.CreatedAt = parseStoredTime(createdAtStr)
	item.UpdatedAt = parseStoredTime(updatedAtStr)
}

// loadAttachments fills tags, history, completed reviews, and calendar event
// ids for one item.
func (r *SQLiteReviewItemRepo) loadAttachments(ctx context.Context, item *domain.ReviewItem) error {
	tagRows, err := r.db.QueryContext(ctx,
		`SELECT tag FROM review_item_tags WHERE slug = ? ORDER BY tag`, item.ID)
	if err != nil {
		return fmt.Errorf("listing review item tags: %w", err)
	}
	for tagRows.Next() {
		var tag string
		if err := tagRows.Scan(&tag); err != nil {
			tagRows.Close()
			return fmt.Errorf("scanning tag: %w", err)
		}
		item.Tags = append(item.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		tagRows.Close()
		return fmt.Errorf("iterating tags: %w", err)
	}
	tagRows.Close()

	recRows, err := r.db.QueryContext(ctx,
		`SELECT reviewed_at, rating, interval_days, ease_factor
		 FROM review_records WHERE slug = ? ORDER BY id`, item.ID)
	if err != nil {
		return fmt.Errorf("listing review records: %w", err)
	}
	for recRows.Next() {
		var rec domain.ReviewRecord
		var dateStr string
		var rating int
		if err := recRows.Scan(&dateStr, &rating, &rec.IntervalDays, &rec.EaseFactor); err != nil {
			recRows.Close()
			return fmt.Errorf("scanning review record: %w", err)
		}
		rec.Date = parseStoredTime(dateStr)
		rec.Rating = domain.Rating(rating)
		item.History = append(item.History, rec)
	}
	if err := recRows.Err(); err != nil {
		recRows.Close()
		return fmt.Errorf("iterating review records: %w", err)
	}
	recRows.Close()

	compRows, err := r.db.QueryContext(ctx,
		`SELECT completed_at FROM completed_reviews WHERE slug = ? ORDER BY completed_at`, item.ID)
	if err != nil {
		return fmt.Errorf("listing completed reviews: %w", err)
	}
	for compRows.Next() {
		var tsStr string
		if err := compRows.Scan(&tsStr); err != nil {
			compRows.Close()
			return fmt.Errorf("scanning completed review: %w", err)
		}
		item.CompletedReviews = append(item.CompletedReviews, parseStoredTime(tsStr))
	}
	if err := compRows.Err(); err != nil {
		compRows.Close()
		return fmt.Errorf("iterating completed reviews: %w", err)
	}
	compRows.Close()

	evRows, err := r.db.QueryContext(ctx,
		`SELECT event_id FROM calendar_events WHERE slug = ? ORDER BY event_id`, item.ID)
	if err != nil {
		return fmt.Errorf("listing calendar events: %w", err)
	}
	for evRows.Next() {
		var id string
		if err := evRows.Scan(&id); err != nil {
			evRows.Close()
			return fmt.Errorf("scanning calendar event: %w", err)
		}
		item.CalendarEventIDs = append(item.CalendarEventIDs, id)
	}
	if err := evRows.Err(); err != nil {
		evRows.Close()
		return fmt.Errorf("iterating calendar events: %w", err)
	}
	evRows.Close()

	return nil
}
