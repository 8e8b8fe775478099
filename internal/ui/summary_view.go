package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
)

// SummaryWindow shows a document summary in a scrollable overlay.
// Esc dismisses.
type SummaryWindow struct {
	filename string
	viewport viewport.Model
}

// Ensure SummaryWindow implements View.
var _ View = (*SummaryWindow)(nil)

const defaultSummaryWidth = 72
const defaultSummaryHeight = 18

// NewSummaryWindow renders the summary into a fresh viewport.
func NewSummaryWindow(filename string, s api.Summary) *SummaryWindow {
	vp := viewport.New(defaultSummaryWidth, defaultSummaryHeight)
	vp.Style = Styles.BoxCompact
	w := &SummaryWindow{filename: filename, viewport: vp}
	w.viewport.SetContent(renderSummary(s))
	return w
}

// Init implements View.
func (w *SummaryWindow) Init() tea.Cmd {
	return w.viewport.Init()
}

// Update implements View.
func (w *SummaryWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		w.viewport.Width = max(40, msg.Width-4)
		w.viewport.Height = max(12, msg.Height/2+4)
		return w, nil
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return w, cmd
}

// View implements View.
func (w *SummaryWindow) View() string {
	header := Styles.Title.Render("Summary — "+w.filename) + Styles.Muted.Render("  Esc: close")
	return header + "\n" + w.viewport.View()
}

func renderSummary(s api.Summary) string {
	var b strings.Builder
	b.WriteString(Styles.Normal.Render(s.Text) + "\n")
	if len(s.KeyPoints) > 0 {
		b.WriteString("\n" + Styles.Title.Render("Key points") + "\n")
		for _, p := range s.KeyPoints {
			b.WriteString(Styles.Normal.Render("• "+p) + "\n")
		}
	}
	if len(s.Risks) > 0 {
		b.WriteString("\n" + Styles.TitleWarning.Render("Risks") + "\n")
		for _, r := range s.Risks {
			b.WriteString(Styles.Warning.Render("! "+r) + "\n")
		}
	}
	return b.String()
}
