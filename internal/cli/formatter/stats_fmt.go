package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/contract"
)

// FormatStats renders the progress dashboard.
func FormatStats(resp *contract.StatsResponse) string {
	var b strings.Builder
	b.WriteString(Header("Progress"))
	b.WriteString("\n\n")

	streak := resp.Streak
	flame := StyleYellow.Render("🔥")
	b.WriteString(fmt.Sprintf("%s Current streak: %s  %s\n",
		flame,
		Bold(Plural(streak.CurrentStreak, "day")),
		Dim(fmt.Sprintf("(longest %d)", streak.LongestStreak))))
	b.WriteString(fmt.Sprintf("Active on %s, %s completed\n",
		Bold(Plural(streak.TotalActiveDays, "day")),
		Bold(Plural(streak.TotalReviews, "review"))))
	if streak.TotalReviews > 0 {
		b.WriteString(fmt.Sprintf("Recall success rate: %s\n", successStyled(streak.SuccessRate)))
	}

	b.WriteString(fmt.Sprintf("\nTracking %s, %s due\n",
		Bold(Plural(resp.TotalItems, "problem")),
		Bold(fmt.Sprintf("%d", resp.DueCount))))

	if len(resp.WeakTags) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Weak tags"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(resp.WeakTags))
		for _, w := range resp.WeakTags {
			rows = append(rows, []string{
				StylePurple.Render(w.Tag),
				fmt.Sprintf("%d", w.Total),
				fmt.Sprintf("%.2f", w.AvgEase),
				fmt.Sprintf("%.0f%%", w.FailRate*100),
				fmt.Sprintf("%.1f", w.Score),
			})
		}
		b.WriteString(RenderTable([]string{"Tag", "Items", "Avg Ease", "Fail Rate", "Score"}, rows))
	}

	return b.String()
}

func successStyled(rate int) string {
	text := fmt.Sprintf("%d%%", rate)
	switch {
	case rate >= 80:
		return StyleGreen.Render(text)
	case rate >= 50:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
