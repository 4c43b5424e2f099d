package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/contract"
)

// FormatPlan renders the daily plan dashboard.
func FormatPlan(resp *contract.PlanResponse) string {
	plan := resp.Plan
	var b strings.Builder

	title := "Daily Plan — " + plan.Date.Format("Mon, Jan 2")
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if plan.BacklogMode {
		b.WriteString(StyleRed.Render("▲ BACKLOG MODE"))
		b.WriteString(Dim(fmt.Sprintf(" — %s overdue, about %s to catch up\n\n",
			Plural(plan.OverdueCount, "item"), Plural(plan.BacklogDays, "day"))))
	} else if plan.IsWeekend {
		b.WriteString(StyleGreen.Render("● WEEKEND"))
		b.WriteString(Dim(" — boosted review target\n\n"))
	}

	b.WriteString(fmt.Sprintf("%s %s due (%s overdue)\n",
		Bold(fmt.Sprintf("%d", plan.DueCount)),
		nounFor(plan.DueCount, "review"),
		fmt.Sprintf("%d", plan.OverdueCount)))
	b.WriteString(fmt.Sprintf("Target %s reviews today, %s recommended\n",
		Bold(fmt.Sprintf("%d", plan.ReviewTarget)),
		Bold(fmt.Sprintf("%d", plan.RecommendedReviews))))
	b.WriteString(fmt.Sprintf("Estimated remaining effort: %s\n",
		Bold(FormatMinutes(plan.EstimatedMinutes))))

	if len(plan.TopReviews) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Start here"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(plan.TopReviews))
		for _, r := range plan.TopReviews {
			rows = append(rows, []string{
				r.Item.Title,
				DifficultyBadge(r.Item.Difficulty),
				EaseIndicator(r.Item.EaseFactor),
				fmt.Sprintf("%.1f", r.PriorityScore),
			})
		}
		b.WriteString(RenderTable([]string{"Problem", "Difficulty", "Ease", "Priority"}, rows))
	}

	if len(plan.WeakTags) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Weak areas"))
		b.WriteString("\n")
		for _, w := range plan.WeakTags {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StylePurple.Render(w.Tag),
				Dim(fmt.Sprintf("(score %.1f, %d tracked)", w.Score, w.Total))))
		}
	}

	for _, warn := range resp.Warnings {
		b.WriteString("\n")
		b.WriteString(Dim("note: " + warn))
		b.WriteString("\n")
	}

	return b.String()
}

func nounFor(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
