package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DifficultyBadge returns a colored difficulty label.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render("Easy")
	case domain.DifficultyMedium:
		return StyleYellow.Render("Medium")
	case domain.DifficultyHard:
		return StyleRed.Render("Hard")
	default:
		return StyleDim.Render("Unknown")
	}
}

// RatingPill returns a colored indicator for a review rating.
func RatingPill(r domain.Rating) string {
	switch r {
	case domain.RatingForgot:
		return StyleRed.Render("✖ Forgot")
	case domain.RatingHard:
		return StyleYellow.Render("◐ Hard")
	case domain.RatingGood:
		return StyleGreen.Render("● Good")
	case domain.RatingEasy:
		return StyleBlue.Render("★ Easy")
	default:
		return StyleDim.Render("? " + r.String())
	}
}

// EaseIndicator colors an ease factor by how close it sits to the floor.
func EaseIndicator(ef float64) string {
	text := fmt.Sprintf("%.2f", ef)
	switch {
	case ef < 1.8:
		return StyleRed.Render(text)
	case ef < 2.3:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
