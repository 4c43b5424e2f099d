package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier delivers short scheduling notifications. Delivery is fire and
// forget: implementations report failure but callers never treat it as fatal.
type Notifier interface {
	Notify(title, body string) error
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Notify(string, string) error { return nil }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fabd2f"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2"))
)

type writerNotifier struct {
	w io.Writer
}

// NewWriterNotifier prints notifications as styled lines on w.
func NewWriterNotifier(w io.Writer) Notifier {
	if w == nil {
		return Noop{}
	}
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(title, body string) error {
	_, err := fmt.Fprintf(n.w, "%s %s\n", titleStyle.Render(title), bodyStyle.Render(body))
	return err
}
