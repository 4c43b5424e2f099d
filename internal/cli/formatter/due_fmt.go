package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/contract"
)

// FormatDue renders the ranked due queue.
func FormatDue(resp *contract.DueResponse) string {
	var b strings.Builder
	b.WriteString(Header("Due for review"))
	b.WriteString("\n\n")

	if resp.DueCount == 0 {
		b.WriteString(StyleGreen.Render("All caught up."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s due, %s overdue\n\n",
		Bold(Plural(resp.DueCount, "item")),
		Bold(fmt.Sprintf("%d", resp.OverdueCount))))

	rows := make([][]string, 0, len(resp.Queue))
	for _, r := range resp.Queue {
		rows = append(rows, []string{
			r.Item.ID,
			DifficultyBadge(r.Item.Difficulty),
			EaseIndicator(r.Item.EaseFactor),
			DueDateStyled(r.Item.NextReview, resp.GeneratedAt),
			fmt.Sprintf("%.1f", r.PriorityScore),
		})
	}
	b.WriteString(RenderTable([]string{"Problem", "Difficulty", "Ease", "Due", "Priority"}, rows))

	if len(resp.Queue) < resp.DueCount {
		b.WriteString(Dim(fmt.Sprintf("…and %d more\n", resp.DueCount-len(resp.Queue))))
	}
	return b.String()
}
