package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexterm/internal/api"
	"lexterm/internal/ui/textutil"
)

// compareItem implements list.Item for the version picker.
type compareItem struct {
	doc api.Document
}

func (c compareItem) FilterValue() string { return c.doc.Filename }
func (c compareItem) Description() string { return "" }
func (c compareItem) Title() string {
	return textutil.Truncate(c.doc.Filename, 50)
}

// CompareView picks two documents and renders the server-side diff:
// added spans, removed spans, and the confidence score.
type CompareView struct {
	list     list.Model
	docs     []api.Document
	viewport viewport.Model
	spinner  spinner.Model

	leftID    string
	leftName  string
	rightName string
	busy      bool
	showing   bool
	errText   string
	width     int
	height    int
}

// Ensure CompareView implements View.
var _ View = (*CompareView)(nil)

// NewCompareView creates an empty compare panel; documents arrive with the
// shared DocumentsLoadedMsg.
func NewCompareView() *CompareView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Pick the original version"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	vp := viewport.New(78, 16)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &CompareView{list: l, viewport: vp, spinner: s}
}

// SetDocuments refreshes the pickable documents. An in-progress selection
// whose document disappeared is reset.
func (v *CompareView) SetDocuments(docs []api.Document) {
	v.docs = docs
	items := make([]list.Item, len(docs))
	found := false
	for i, d := range docs {
		items[i] = compareItem{doc: d}
		if d.ID == v.leftID {
			found = true
		}
	}
	v.list.SetItems(items)
	if v.leftID != "" && !found {
		v.resetSelection()
	}
}

// SetBusy toggles the in-flight spinner.
func (v *CompareView) SetBusy(busy bool) tea.Cmd {
	v.busy = busy
	if busy {
		v.errText = ""
		return v.spinner.Tick
	}
	return nil
}

// ShowResult renders a finished comparison into the scrollable viewport.
func (v *CompareView) ShowResult(res api.CompareResult) {
	v.busy = false
	v.showing = true
	v.viewport.SetContent(renderCompareResult(res, v.leftName, v.rightName))
	v.viewport.GotoTop()
}

// SetError shows the inline comparison error and returns to picking.
func (v *CompareView) SetError(msg string) {
	v.busy = false
	v.errText = msg
	v.resetSelection()
}

func (v *CompareView) resetSelection() {
	v.leftID = ""
	v.leftName = ""
	v.rightName = ""
	v.list.Title = "Pick the original version"
}

// Init implements View.
func (v *CompareView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *CompareView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(msg.Height - 8)
		v.viewport.Width = max(40, msg.Width-4)
		v.viewport.Height = max(10, msg.Height-8)
		return v, nil
	case ThemeChangedMsg:
		v.list.SetDelegate(NewCompactListDelegate())
		v.list.Styles.Title = Styles.Title
		return v, nil
	case spinner.TickMsg:
		if v.busy {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		if v.showing {
			if msg.String() == "esc" || msg.String() == "x" {
				v.showing = false
				v.resetSelection()
				return v, nil
			}
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
		switch msg.String() {
		case "enter":
			return v, v.pick()
		case "x":
			v.resetSelection()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// pick stages the highlighted document as left, then right; picking the
// right side emits the compare request.
func (v *CompareView) pick() tea.Cmd {
	i := v.list.Index()
	if i < 0 || i >= len(v.docs) {
		return nil
	}
	doc := v.docs[i]
	if v.leftID == "" {
		v.leftID = doc.ID
		v.leftName = doc.Filename
		v.list.Title = "Pick the revised version"
		return nil
	}
	if doc.ID == v.leftID {
		v.errText = "pick two different documents"
		return nil
	}
	v.errText = ""
	v.rightName = doc.Filename
	leftID, rightID, leftName := v.leftID, doc.ID, v.leftName
	return func() tea.Msg {
		return CompareRequestMsg{
			LeftID:    leftID,
			RightID:   rightID,
			LeftName:  leftName,
			RightName: doc.Filename,
		}
	}
}

// View implements View.
func (v *CompareView) View() string {
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(16)
	}

	var b strings.Builder
	if v.showing {
		b.WriteString(Styles.Title.Render("Comparison") + "\n")
		b.WriteString(v.viewport.View())
		b.WriteString("\n" + Styles.Hint.Render("j/k: scroll  esc: new comparison"))
		return b.String()
	}

	title := "Compare"
	if v.busy {
		b.WriteString(Styles.Title.Render(title) + " " + v.spinner.View() + "\n")
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("comparing %s against %s…", v.leftName, v.rightName)))
		return b.String()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	if v.leftID != "" {
		b.WriteString(Styles.Muted.Render("original: ") + Styles.Selected.Render(v.leftName) + "\n")
	}
	if v.errText != "" {
		b.WriteString(Styles.TitleWarning.Render(v.errText) + "\n")
	}
	if len(v.docs) < 2 {
		b.WriteString(Styles.Empty.Render("Need at least two uploaded documents to compare.") + "\n")
	}
	b.WriteString(v.list.View())
	b.WriteString("\n" + Styles.Hint.Render("enter: pick  x: reset"))
	return b.String()
}

// renderCompareResult formats the diff for the viewport.
func renderCompareResult(res api.CompareResult, leftName, rightName string) string {
	var b strings.Builder
	b.WriteString(Styles.Muted.Render(leftName+" → "+rightName) + "\n")
	b.WriteString(Styles.Status.Render(fmt.Sprintf("confidence %.0f%%", res.Confidence*100)) + "\n\n")

	b.WriteString(Styles.Title.Render(fmt.Sprintf("Added (%d)", len(res.Added))) + "\n")
	if len(res.Added) == 0 {
		b.WriteString(Styles.Empty.Render("nothing added") + "\n")
	}
	for _, span := range res.Added {
		b.WriteString(renderSpan(span, Styles.Added, "+"))
	}

	b.WriteString("\n" + Styles.Title.Render(fmt.Sprintf("Removed (%d)", len(res.Removed))) + "\n")
	if len(res.Removed) == 0 {
		b.WriteString(Styles.Empty.Render("nothing removed") + "\n")
	}
	for _, span := range res.Removed {
		b.WriteString(renderSpan(span, Styles.Removed, "-"))
	}
	return b.String()
}

func renderSpan(span api.Span, style lipgloss.Style, sign string) string {
	prefix := sign + " "
	if span.Section != "" {
		prefix += "§" + span.Section + " "
	}
	return style.Render(prefix+span.Text) + "\n"
}
