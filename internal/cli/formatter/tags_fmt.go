package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/contract"
)

// FormatTags renders today's and all-time tag distributions.
func FormatTags(resp *contract.TagsResponse) string {
	var b strings.Builder

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	if len(resp.Today) == 0 {
		b.WriteString(Dim("No practice logged today.") + "\n")
	} else {
		writeTagCounts(&b, resp.Today)
	}

	b.WriteString("\n")
	b.WriteString(Header("All time"))
	b.WriteString("\n")
	if len(resp.All) == 0 {
		b.WriteString(Dim("Nothing tracked yet.") + "\n")
	} else {
		writeTagCounts(&b, resp.All)
	}

	return b.String()
}

func writeTagCounts(b *strings.Builder, counts []contract.TagCount) {
	for _, tc := range counts {
		bar := strings.Repeat("▇", minCount(tc.Count, 20))
		// Pad before styling so ANSI codes don't skew the column.
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			StylePurple.Render(fmt.Sprintf("%-20s", tc.Tag)), StyleBlue.Render(bar), tc.Count))
	}
}

func minCount(a, b int) int {
	if a < b {
		return a
	}
	return b
}
