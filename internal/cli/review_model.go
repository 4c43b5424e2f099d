package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/cli/formatter"
	"github.com/alexanderramin/mnemo/internal/contract"
	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reviewKeyMap binds rating and navigation keys for the review session.
type reviewKeyMap struct {
	Forgot key.Binding
	Hard   key.Binding
	Good   key.Binding
	Easy   key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Forgot: key.NewBinding(key.WithKeys("0", "f"), key.WithHelp("0/f", "forgot")),
		Hard:   key.NewBinding(key.WithKeys("1", "h"), key.WithHelp("1/h", "hard")),
		Good:   key.NewBinding(key.WithKeys("2", "g"), key.WithHelp("2/g", "good")),
		Easy:   key.NewBinding(key.WithKeys("3", "e"), key.WithHelp("3/e", "easy")),
		Skip:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ratedMsg carries the result of one rating call back into the model.
type ratedMsg struct {
	resp *contract.RateResponse
	err  error
}

type reviewModel struct {
	app   *App
	keys  reviewKeyMap
	queue []contract.RankedItem

	idx      int
	waiting  bool
	spinner  spinner.Model
	outcomes []*contract.RateResponse
	skipped  int
	lastErr  error
	done     bool
}

func newReviewModel(app *App, queue []contract.RankedItem) reviewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return reviewModel{
		app:     app,
		keys:    newReviewKeyMap(),
		queue:   queue,
		spinner: sp,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}
		if m.waiting || m.done {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Forgot):
			return m.rate(domain.RatingForgot)
		case key.Matches(msg, m.keys.Hard):
			return m.rate(domain.RatingHard)
		case key.Matches(msg, m.keys.Good):
			return m.rate(domain.RatingGood)
		case key.Matches(msg, m.keys.Easy):
			return m.rate(domain.RatingEasy)
		case key.Matches(msg, m.keys.Skip):
			m.skipped++
			return m.advance()
		}
		return m, nil

	case ratedMsg:
		m.waiting = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.outcomes = append(m.outcomes, msg.resp)
		return m.advance()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m reviewModel) rate(rating domain.Rating) (tea.Model, tea.Cmd) {
	slug := m.queue[m.idx].Item.ID
	m.waiting = true
	m.lastErr = nil
	return m, func() tea.Msg {
		resp, err := m.app.Reviews.Rate(context.Background(), contract.RateRequest{
			Slug:   slug,
			Rating: rating,
		})
		return ratedMsg{resp: resp, err: err}
	}
}

func (m reviewModel) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx >= len(m.queue) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m reviewModel) View() string {
	if m.done || m.idx >= len(m.queue) {
		return ""
	}
	item := m.queue[m.idx].Item

	var b strings.Builder
	b.WriteString(formatter.Dim(fmt.Sprintf("Review %d of %d", m.idx+1, len(m.queue))))
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold(item.Title))
	b.WriteString("  " + formatter.DifficultyBadge(item.Difficulty))
	b.WriteString("\n")
	if item.URL != "" {
		b.WriteString(formatter.Dim(item.URL) + "\n")
	}
	if len(item.Tags) > 0 {
		b.WriteString(formatter.StylePurple.Render(strings.Join(item.Tags, ", ")) + "\n")
	}
	b.WriteString(fmt.Sprintf("\nEase %s, last interval %s\n",
		formatter.EaseIndicator(item.EaseFactor),
		formatter.Plural(item.IntervalDays, "day")))

	if m.waiting {
		b.WriteString(fmt.Sprintf("\n%s recording…\n", m.spinner.View()))
	} else {
		b.WriteString("\n" + formatter.Dim("How did it go?  0/f forgot · 1/h hard · 2/g good · 3/e easy · s skip · q quit") + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(formatter.StyleRed.Render("error: "+m.lastErr.Error()) + "\n")
	}
	return b.String()
}

// summary renders the post-session recap printed after the program exits.
func (m reviewModel) summary() string {
	if len(m.outcomes) == 0 && m.skipped == 0 {
		return formatter.Dim("Session ended, nothing rated.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Session complete"))
	b.WriteString("\n\n")
	for _, resp := range m.outcomes {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.RatingPill(resp.Rating),
			formatter.Bold(resp.Slug),
			formatter.Dim(fmt.Sprintf("next in %s", formatter.Plural(resp.IntervalDays, "day")))))
	}
	if m.skipped > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("skipped %d\n", m.skipped)))
	}
	remaining := len(m.queue) - len(m.outcomes) - m.skipped
	if remaining > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("%d still due\n", remaining)))
	}
	return b.String()
}
