package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/google/uuid"
)

const (
	eventDuration = time.Hour
	alarmLead     = 30 * time.Minute
)

// Event is one scheduled review occurrence ready for export.
type Event struct {
	ID      string
	Summary string
	Start   time.Time
}

// ExportResult reports what an export wrote and what it had to skip.
type ExportResult struct {
	Path     string
	EventIDs []string
	Skipped  int
}

// Exporter writes review schedules as iCalendar files.
type Exporter interface {
	Export(path string, events []Event) (*ExportResult, error)
}

type icsExporter struct{}

// NewICSExporter creates an Exporter producing RFC 5545 output with a 30
// minute reminder alarm per event.
func NewICSExporter() Exporter {
	return &icsExporter{}
}

// ProjectSchedule builds the remaining review occurrences for an item: the
// pending next review, then count-1 further repeats of the current interval.
func ProjectSchedule(item *domain.ReviewItem, count int) []Event {
	if count < 1 {
		count = 1
	}
	interval := item.IntervalDays
	if interval < 1 {
		interval = 1
	}
	summary := fmt.Sprintf("Review: %s", item.Title)

	events := make([]Event, 0, count)
	start := item.NextReview
	for i := 0; i < count; i++ {
		events = append(events, Event{
			ID:      uuid.New().String(),
			Summary: summary,
			Start:   start,
		})
		start = domain.AtReminderTime(start.AddDate(0, 0, interval))
	}
	return events
}

func (e *icsExporter) Export(path string, events []Event) (*ExportResult, error) {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//mnemo//review scheduler//EN\r\n")

	result := &ExportResult{Path: path}
	for _, ev := range events {
		block, err := encodeEvent(ev)
		if err != nil {
			result.Skipped++
			continue
		}
		b.WriteString(block)
		result.EventIDs = append(result.EventIDs, ev.ID)
	}
	b.WriteString("END:VCALENDAR\r\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing calendar file: %w", err)
	}
	return result, nil
}

func encodeEvent(ev Event) (string, error) {
	if ev.Start.IsZero() {
		return "", fmt.Errorf("event %s has no start time", ev.ID)
	}
	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s\r\n", ev.ID)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", icsTime(time.Now()))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", icsTime(ev.Start))
	fmt.Fprintf(&b, "DTEND:%s\r\n", icsTime(ev.Start.Add(eventDuration)))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeText(ev.Summary))
	b.WriteString("BEGIN:VALARM\r\n")
	b.WriteString("ACTION:DISPLAY\r\n")
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeText(ev.Summary))
	fmt.Fprintf(&b, "TRIGGER:-PT%dM\r\n", int(alarmLead.Minutes()))
	b.WriteString("END:VALARM\r\n")
	b.WriteString("END:VEVENT\r\n")
	return b.String(), nil
}

func icsTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeText applies the TEXT escaping rules from RFC 5545 §3.3.11.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
