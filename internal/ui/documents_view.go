package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"lexterm/internal/api"
	"lexterm/internal/ui/textutil"
)

// docItem implements list.Item for a server document record.
type docItem struct {
	doc api.Document
}

func (d docItem) FilterValue() string { return d.doc.Filename }
func (d docItem) Description() string { return "" }
func (d docItem) Title() string {
	name := textutil.Truncate(d.doc.Filename, 40)
	size := humanize.Bytes(uint64(d.doc.Size))
	return fmt.Sprintf("%s %s  %s", statusGlyph(d.doc.Status), textutil.PadRight(name, 42), size)
}

func statusGlyph(s api.DocumentStatus) string {
	switch s {
	case api.StatusReady:
		return "✓"
	case api.StatusFailed:
		return "✗"
	case api.StatusProcessing:
		return "…"
	default:
		return "•"
	}
}

// DocumentsView lists the uploaded documents with status and size.
// Summarize/delete/refresh are dispatched by keys handled here; the actual
// requests run as commands owned by the app.
type DocumentsView struct {
	list    list.Model
	docs    []api.Document
	spinner spinner.Model
	loading bool
	errText string
}

// Ensure DocumentsView implements View.
var _ View = (*DocumentsView)(nil)

// NewDocumentsView creates an empty documents panel; the listing arrives via
// DocumentsLoadedMsg.
func NewDocumentsView() *DocumentsView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Documents"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &DocumentsView{list: l, spinner: s}
}

// Documents returns the currently displayed records.
func (v *DocumentsView) Documents() []api.Document { return v.docs }

// Selected returns the highlighted document, if any.
func (v *DocumentsView) Selected() (api.Document, bool) {
	if len(v.docs) == 0 {
		return api.Document{}, false
	}
	i := v.list.Index()
	if i < 0 || i >= len(v.docs) {
		return api.Document{}, false
	}
	return v.docs[i], true
}

// SetLoading toggles the spinner; returns its tick command when starting.
func (v *DocumentsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		v.errText = ""
		return v.spinner.Tick
	}
	return nil
}

// SetDocuments replaces the listing.
func (v *DocumentsView) SetDocuments(docs []api.Document) {
	v.loading = false
	v.errText = ""
	v.docs = docs
	items := make([]list.Item, len(docs))
	for i, d := range docs {
		items[i] = docItem{doc: d}
	}
	v.list.SetItems(items)
}

// SetError shows the inline fetch error.
func (v *DocumentsView) SetError(msg string) {
	v.loading = false
	v.errText = msg
}

// Init implements View.
func (v *DocumentsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *DocumentsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(msg.Height - 8) // header, tab bar, hints, toasts
		return v, nil
	case ThemeChangedMsg:
		v.list.SetDelegate(NewCompactListDelegate())
		v.list.Styles.Title = Styles.Title
		return v, nil
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return v, func() tea.Msg { return RefreshDocumentsMsg{} }
		case "s", "enter":
			if doc, ok := v.Selected(); ok {
				return v, func() tea.Msg {
					return SummarizeRequestMsg{DocumentID: doc.ID, Filename: doc.Filename}
				}
			}
			return v, nil
		case "d", "backspace":
			if _, ok := v.Selected(); ok {
				return v, func() tea.Msg { return ShowDeleteDocumentMsg{} }
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *DocumentsView) View() string {
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}

	var b strings.Builder
	title := fmt.Sprintf("Documents (%d)", len(v.docs))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	if v.errText != "" {
		b.WriteString(Styles.TitleWarning.Render(v.errText) + "\n")
	}
	if len(v.docs) == 0 && !v.loading && v.errText == "" {
		b.WriteString(Styles.Empty.Render("No documents yet. Upload one from the Upload tab.") + "\n")
	}
	b.WriteString(v.list.View())
	b.WriteString("\n" + Styles.Hint.Render("enter/s: summarize  d: delete  r: refresh"))
	return b.String()
}
