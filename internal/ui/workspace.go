package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
)

// WorkspaceView hosts the four panels behind a tab bar. Data messages fan
// out to every panel that cares; key messages go to the active tab only.
type WorkspaceView struct {
	Active    Tab
	Upload    *UploadView
	Documents *DocumentsView
	Compare   *CompareView
	Chat      *ChatView

	user   api.User
	width  int
	height int
}

// Ensure WorkspaceView implements View.
var _ View = (*WorkspaceView)(nil)

// NewWorkspaceView creates the workspace with the documents tab active.
func NewWorkspaceView(user api.User) *WorkspaceView {
	return &WorkspaceView{
		Active:    TabDocuments,
		Upload:    NewUploadView(),
		Documents: NewDocumentsView(),
		Compare:   NewCompareView(),
		Chat:      NewChatView(),
		user:      user,
	}
}

// CapturingText reports whether the active panel owns plain keystrokes
// (chat input focused), in which case the leader key must not engage.
func (w *WorkspaceView) CapturingText() bool {
	return w.Active == TabChat && w.Chat != nil && w.Chat.input.Focused()
}

// SetTab activates a tab.
func (w *WorkspaceView) SetTab(t Tab) {
	w.Active = t
}

// Init implements View.
func (w *WorkspaceView) Init() tea.Cmd {
	return tea.Batch(w.Upload.Init(), w.Documents.Init(), w.Compare.Init(), w.Chat.Init())
}

// Update implements View.
func (w *WorkspaceView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		return w, w.broadcast(msg)
	case ThemeChangedMsg:
		return w, w.broadcast(msg)
	case tea.KeyMsg:
		if !w.CapturingText() {
			switch msg.String() {
			case "tab":
				w.Active = w.Active.Next()
				return w, nil
			case "shift+tab":
				w.Active = w.Active.Prev()
				return w, nil
			case "1":
				w.Active = TabUpload
				return w, nil
			case "2":
				w.Active = TabDocuments
				return w, nil
			case "3":
				w.Active = TabCompare
				return w, nil
			case "4":
				w.Active = TabChat
				return w, nil
			}
		}
		return w, w.updateActive(msg)
	}

	// Non-key messages (spinner ticks, picker internals) fan out so each
	// panel's async widgets keep animating while another tab is active.
	return w, w.broadcast(msg)
}

func (w *WorkspaceView) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var v View
	switch w.Active {
	case TabUpload:
		v, cmd = w.Upload.Update(msg)
		w.Upload = v.(*UploadView)
	case TabDocuments:
		v, cmd = w.Documents.Update(msg)
		w.Documents = v.(*DocumentsView)
	case TabCompare:
		v, cmd = w.Compare.Update(msg)
		w.Compare = v.(*CompareView)
	case TabChat:
		v, cmd = w.Chat.Update(msg)
		w.Chat = v.(*ChatView)
	}
	return cmd
}

func (w *WorkspaceView) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var v View
	var cmd tea.Cmd

	v, cmd = w.Upload.Update(msg)
	w.Upload = v.(*UploadView)
	cmds = append(cmds, cmd)

	v, cmd = w.Documents.Update(msg)
	w.Documents = v.(*DocumentsView)
	cmds = append(cmds, cmd)

	v, cmd = w.Compare.Update(msg)
	w.Compare = v.(*CompareView)
	cmds = append(cmds, cmd)

	v, cmd = w.Chat.Update(msg)
	w.Chat = v.(*ChatView)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// View implements View.
func (w *WorkspaceView) View() string {
	var b strings.Builder
	b.WriteString(w.tabBar() + "\n\n")
	switch w.Active {
	case TabUpload:
		b.WriteString(w.Upload.View())
	case TabDocuments:
		b.WriteString(w.Documents.View())
	case TabCompare:
		b.WriteString(w.Compare.View())
	case TabChat:
		b.WriteString(w.Chat.View())
	}
	return b.String()
}

func (w *WorkspaceView) tabBar() string {
	parts := make([]string, 0, int(tabCount)+1)
	for t := TabUpload; t < tabCount; t++ {
		label := t.String()
		if t == w.Active {
			parts = append(parts, Styles.TabActive.Render(label))
		} else {
			parts = append(parts, Styles.TabInactive.Render(label))
		}
	}
	bar := strings.Join(parts, Styles.Muted.Render(" │ "))
	who := ""
	if w.user.Email != "" {
		who = Styles.Muted.Render("   " + w.user.Email)
	}
	return bar + who
}
