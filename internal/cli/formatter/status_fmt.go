package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
)

// FormatStatus renders one tracked problem's scheduling state.
func FormatStatus(resp *contract.StatusResponse) string {
	if !resp.Tracked {
		return Dim("Not tracked. Add it with 'mnemo add <slug>'.") + "\n"
	}
	item := resp.Item

	var b strings.Builder
	b.WriteString(Header(item.Title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", DifficultyBadge(item.Difficulty), Dim(item.URL)))
	if len(item.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", StylePurple.Render(strings.Join(item.Tags, ", "))))
	}

	b.WriteString(fmt.Sprintf("\nEase %s, interval %s, next review %s\n",
		EaseIndicator(item.EaseFactor),
		Bold(Plural(item.IntervalDays, "day")),
		Bold(item.NextReview.Format("Jan 2 15:04"))))

	switch {
	case resp.Overdue:
		b.WriteString(StyleRed.Render("● OVERDUE") + "\n")
	case resp.DueNow:
		b.WriteString(StyleYellow.Render("● DUE TODAY") + "\n")
	default:
		b.WriteString(StyleGreen.Render("● ON SCHEDULE") + "\n")
	}
	b.WriteString(fmt.Sprintf("Priority score %s\n", Bold(fmt.Sprintf("%.1f", resp.PriorityScore))))

	if resp.LoggedToday {
		b.WriteString(Dim("Practiced today.") + "\n")
	}

	if len(item.History) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("History"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(item.History))
		for _, rec := range item.History {
			rows = append(rows, []string{
				rec.Date.Format("Jan 2"),
				RatingPill(rec.Rating),
				Plural(rec.IntervalDays, "day"),
				fmt.Sprintf("%.2f", rec.EaseFactor),
			})
		}
		b.WriteString(RenderTable([]string{"Date", "Rating", "Interval", "Ease"}, rows))
	}

	return b.String()
}

// FormatAdded renders the confirmation line after tracking a new problem.
func FormatAdded(resp *contract.AddResponse) string {
	item := resp.Item
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Tracking %s %s\n",
		StyleGreen.Render("✔"),
		Bold(item.Title),
		DifficultyBadge(item.Difficulty)))
	b.WriteString(Dim(fmt.Sprintf("  first review %s\n", item.NextReview.Format("Jan 2 15:04"))))
	if resp.TagsFetched && len(item.Tags) > 0 {
		b.WriteString(Dim("  tags: " + strings.Join(item.Tags, ", ") + "\n"))
	}
	if resp.AutoLogged {
		b.WriteString(Dim("  practice logged for today\n"))
	}
	return b.String()
}

// FormatRateOutcome renders the scheduling result of a rating.
func FormatRateOutcome(resp *contract.RateResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", RatingPill(resp.Rating), Bold(resp.Slug)))
	b.WriteString(fmt.Sprintf("  next review in %s (%s), ease %s\n",
		Bold(Plural(resp.IntervalDays, "day")),
		resp.NextReview.Format("Jan 2"),
		EaseIndicator(resp.EaseFactor)))
	if resp.Rating == domain.RatingForgot {
		b.WriteString(Dim("  schedule reset, it comes back tomorrow\n"))
	}
	return b.String()
}
