package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// ToastLevel classifies a toast for styling.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// toastTTL is how long a toast stays visible.
const toastTTL = 4 * time.Second

// Toast is one transient notice.
type Toast struct {
	ID    string
	Level ToastLevel
	Text  string
}

// toastExpiredMsg removes a toast by ID after its TTL.
type toastExpiredMsg struct {
	ID string
}

// Toasts is the queue rendered at the bottom of the screen, oldest first.
type Toasts struct {
	queue []Toast
}

// Push enqueues a toast and returns the command that expires it.
func (t *Toasts) Push(level ToastLevel, text string) tea.Cmd {
	toast := Toast{ID: uuid.NewString(), Level: level, Text: text}
	t.queue = append(t.queue, toast)
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: toast.ID}
	})
}

// Expire removes the toast with the given ID, if still queued.
func (t *Toasts) Expire(id string) {
	for i, toast := range t.queue {
		if toast.ID == id {
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			return
		}
	}
}

// Len returns the number of queued toasts.
func (t *Toasts) Len() int {
	return len(t.queue)
}

// View renders the queue, one line per toast, or "" when empty.
func (t *Toasts) View() string {
	if len(t.queue) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.queue))
	for _, toast := range t.queue {
		lines = append(lines, toastStyle(toast.Level).Render(toastIcon(toast.Level)+" "+toast.Text))
	}
	return strings.Join(lines, "\n")
}

func toastIcon(level ToastLevel) string {
	switch level {
	case ToastSuccess:
		return "✓"
	case ToastWarning:
		return "!"
	case ToastError:
		return "✗"
	default:
		return "•"
	}
}

func toastStyle(level ToastLevel) lipgloss.Style {
	switch level {
	case ToastSuccess:
		return Styles.Added
	case ToastWarning:
		return Styles.Warning
	case ToastError:
		return Styles.TitleWarning
	default:
		return Styles.Muted
	}
}
