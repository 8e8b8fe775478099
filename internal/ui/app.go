package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexterm/internal/api"
	"lexterm/internal/authstore"
)

// AppModel is the root model: auth screen until a session exists, then the
// tabbed workspace, with modals stacked on top and toasts at the bottom.
type AppModel struct {
	Mode       AppMode
	Auth       *AuthView
	Workspace  *WorkspaceView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Toasts     Toasts

	Client  *api.Client
	Store   *authstore.Store
	Session api.Session

	width  int
	height int
}

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Ensure the adapter satisfies tea.Model.
var _ tea.Model = (*appModelAdapter)(nil)

// NewAppModel creates the root model. When the credential cache holds a
// session the app starts signed in; the token is still validated by the
// first listing request.
func NewAppModel(client *api.Client, store *authstore.Store, theme string) *AppModel {
	SetTheme(theme)

	a := &AppModel{
		Mode:       ModeAuth,
		Auth:       NewAuthView(),
		Client:     client,
		Store:      store,
		KeyHandler: NewKeyHandler(newKeybinds()),
	}

	if store != nil {
		if sess, ok, err := store.Load(); err == nil && ok {
			a.startSession(sess)
		}
	}
	return a
}

// newKeybinds builds the leader-key registry. Single-key bindings are
// limited to ctrl-chords so typing in inputs is never hijacked.
func newKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	workspace := []AppMode{ModeWorkspace}

	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDescForMode("ctrl+k", showPalette, "Commands", workspace)

	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", workspace)
	reg.BindWithDescForMode("SPC p", showPalette, "Commands", workspace)
	reg.BindWithDescForMode("SPC r", send(RefreshDocumentsMsg{}), "Refresh documents", workspace)
	reg.BindWithDescForMode("SPC t", send(ToggleThemeMsg{}), "Toggle theme", workspace)
	reg.BindWithDescForMode("SPC l", showLogoutConfirm, "Sign out", workspace)
	reg.BindWithDescForMode("SPC g u", send(SwitchTabMsg{Tab: TabUpload}), "Upload", workspace)
	reg.BindWithDescForMode("SPC g d", send(SwitchTabMsg{Tab: TabDocuments}), "Documents", workspace)
	reg.BindWithDescForMode("SPC g c", send(SwitchTabMsg{Tab: TabCompare}), "Compare", workspace)
	reg.BindWithDescForMode("SPC g a", send(SwitchTabMsg{Tab: TabChat}), "Chat", workspace)
	return reg
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func showPalette() tea.Msg { return ShowPaletteMsg{} }

func showLogoutConfirm() tea.Msg { return ShowDeleteSessionMsg{} }

// ShowDeleteSessionMsg opens the sign-out confirm modal.
type ShowDeleteSessionMsg struct{}

// AsTeaModel returns a tea.Model adapter for tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// startSession installs the session without touching the store (used for
// cache restore; Save happens in the SessionStartedMsg handler).
func (a *AppModel) startSession(sess api.Session) {
	a.Session = sess
	if a.Client != nil {
		a.Client.SetToken(sess.Token)
	}
	a.Mode = ModeWorkspace
	a.Workspace = NewWorkspaceView(sess.User)
}

// endSession drops back to the auth screen.
func (a *AppModel) endSession() {
	a.Session = api.Session{}
	if a.Client != nil {
		a.Client.SetToken("")
	}
	a.Mode = ModeAuth
	a.Auth = NewAuthView()
	a.Workspace = nil
	a.Overlays = OverlayStack{}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Mode == ModeWorkspace && a.Workspace != nil {
		return tea.Batch(
			a.Workspace.Init(),
			a.Workspace.Documents.SetLoading(true),
			loadDocumentsCmd(a.Client),
		)
	}
	return a.Auth.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmds := []tea.Cmd{a.updateCurrent(msg)}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case toastExpiredMsg:
		a.Toasts.Expire(msg.ID)
		return a, nil
	case ToastMsg:
		return a, a.Toasts.Push(msg.Level, msg.Text)

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ShowPaletteMsg:
		a.Overlays.Push(Overlay{View: NewPaletteModal(DefaultPaletteCommands()), Dismiss: "esc"})
		return a, nil
	case ShowDeleteSessionMsg:
		a.Overlays.Push(Overlay{View: NewLogoutConfirmModal(), Dismiss: "esc"})
		return a, nil
	case ToggleThemeMsg:
		return a, a.toggleTheme()

	case AuthSubmittedMsg:
		return a.handleAuthSubmitted(msg)
	case SessionStartedMsg:
		return a.handleSessionStarted(msg)
	case AuthFailedMsg:
		if a.Auth != nil {
			a.Auth.SetError(msg.Err)
		}
		return a, nil
	case LogoutMsg:
		return a.handleLogout()

	case SwitchTabMsg:
		if a.Workspace != nil {
			a.Workspace.SetTab(msg.Tab)
		}
		return a, nil

	case RefreshDocumentsMsg:
		if a.Workspace == nil {
			return a, nil
		}
		return a, tea.Batch(
			a.Workspace.Documents.SetLoading(true),
			loadDocumentsCmd(a.Client),
		)
	case DocumentsLoadedMsg:
		return a.handleDocumentsLoaded(msg)

	case UploadRequestMsg:
		if a.Workspace == nil {
			return a, nil
		}
		return a, tea.Batch(
			a.Workspace.Upload.SetBusy(true),
			uploadCmd(a.Client, msg.Path),
		)
	case UploadFinishedMsg:
		return a.handleUploadFinished(msg)

	case SummarizeRequestMsg:
		if a.Workspace == nil {
			return a, nil
		}
		return a, tea.Batch(
			a.Workspace.Documents.SetLoading(true),
			summarizeCmd(a.Client, msg.DocumentID, msg.Filename),
		)
	case SummaryReadyMsg:
		return a.handleSummaryReady(msg)

	case ShowDeleteDocumentMsg:
		if a.Workspace != nil {
			if doc, ok := a.Workspace.Documents.Selected(); ok {
				a.Overlays.Push(Overlay{View: NewDeleteDocumentConfirmModal(doc), Dismiss: "esc"})
			}
		}
		return a, nil
	case DeleteDocumentMsg:
		a.Overlays.Pop()
		return a, deleteDocumentCmd(a.Client, msg.Doc)
	case DocumentDeletedMsg:
		return a.handleDocumentDeleted(msg)

	case CompareRequestMsg:
		if a.Workspace == nil {
			return a, nil
		}
		return a, tea.Batch(
			a.Workspace.Compare.SetBusy(true),
			compareCmd(a.Client, msg),
		)
	case CompareFinishedMsg:
		return a.handleCompareFinished(msg)

	case AskSubmittedMsg:
		if a.Workspace == nil {
			return a, nil
		}
		return a, tea.Batch(
			a.Workspace.Chat.BeginTurn(msg.Question),
			askCmd(a.Client, msg.Question),
		)
	case AnswerReceivedMsg:
		if a.Workspace != nil {
			a.Workspace.Chat.FinishTurn(msg)
		}
		return a, nil
	}

	// Everything else (spinner ticks, blink, picker internals) goes to the
	// overlays and the current view.
	cmds := []tea.Cmd{a.updateCurrent(msg)}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, even while an input is capturing.
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Topmost overlay owns input while present.
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			// Palette filtering wants Esc for itself first.
			if p, isPalette := top.View.(*PaletteModal); !isPalette || !p.Filtering() {
				a.Overlays.Pop()
				return a, nil
			}
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	// Leader keybinds engage only in the workspace and only when no text
	// input is capturing keystrokes.
	if a.Mode == ModeWorkspace && a.Workspace != nil {
		capturing := a.Workspace.CapturingText()
		if !capturing || msg.String() == "ctrl+k" {
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
	}

	return a, a.updateCurrent(msg)
}

func (a *appModelAdapter) handleAuthSubmitted(msg AuthSubmittedMsg) (tea.Model, tea.Cmd) {
	if a.Auth == nil {
		return a, nil
	}
	busy := a.Auth.SetBusy(true)
	if msg.Register {
		return a, tea.Batch(busy, registerCmd(a.Client, msg.Email, msg.Password, msg.Name))
	}
	return a, tea.Batch(busy, loginCmd(a.Client, msg.Email, msg.Password))
}

func (a *appModelAdapter) handleSessionStarted(msg SessionStartedMsg) (tea.Model, tea.Cmd) {
	a.startSession(msg.Session)

	cmds := []tea.Cmd{
		a.Workspace.Init(),
		a.Workspace.Documents.SetLoading(true),
		loadDocumentsCmd(a.Client),
	}
	if !msg.Restored && a.Store != nil {
		if err := a.Store.Save(msg.Session); err != nil {
			cmds = append(cmds, a.Toasts.Push(ToastWarning, "could not cache session: "+err.Error()))
		}
	}
	cmds = append(cmds, a.Toasts.Push(ToastSuccess, "signed in as "+msg.Session.User.Email))
	return a, tea.Batch(cmds...)
}

func (a *appModelAdapter) handleLogout() (tea.Model, tea.Cmd) {
	if a.Store != nil {
		if err := a.Store.Clear(); err != nil {
			return a, a.Toasts.Push(ToastError, "could not clear session: "+err.Error())
		}
	}
	a.endSession()
	return a, tea.Batch(a.Auth.Init(), a.Toasts.Push(ToastInfo, "signed out"))
}

func (a *appModelAdapter) handleDocumentsLoaded(msg DocumentsLoadedMsg) (tea.Model, tea.Cmd) {
	if a.Workspace == nil {
		return a, nil
	}
	if msg.Err != "" {
		a.Workspace.Documents.SetError(msg.Err)
		if msg.Unauthorized {
			// Stale cached token: drop to the auth screen.
			a.endSession()
			return a, a.Toasts.Push(ToastWarning, "session expired, sign in again")
		}
		return a, a.Toasts.Push(ToastError, msg.Err)
	}
	a.Workspace.Documents.SetDocuments(msg.Docs)
	a.Workspace.Compare.SetDocuments(msg.Docs)
	return a, nil
}

func (a *appModelAdapter) handleUploadFinished(msg UploadFinishedMsg) (tea.Model, tea.Cmd) {
	if a.Workspace == nil {
		return a, nil
	}
	if msg.Err != "" {
		a.Workspace.Upload.SetError(msg.Err)
		return a, a.Toasts.Push(ToastError, msg.Err)
	}
	a.Workspace.Upload.Clear()
	return a, tea.Batch(
		a.Toasts.Push(ToastSuccess, "uploaded "+msg.Doc.Filename),
		a.Workspace.Documents.SetLoading(true),
		loadDocumentsCmd(a.Client),
	)
}

func (a *appModelAdapter) handleSummaryReady(msg SummaryReadyMsg) (tea.Model, tea.Cmd) {
	if a.Workspace == nil {
		return a, nil
	}
	a.Workspace.Documents.SetLoading(false)
	if msg.Err != "" {
		return a, a.Toasts.Push(ToastError, msg.Err)
	}
	a.Overlays.Push(Overlay{View: NewSummaryWindow(msg.Filename, msg.Summary), Dismiss: "esc"})
	return a, nil
}

func (a *appModelAdapter) handleDocumentDeleted(msg DocumentDeletedMsg) (tea.Model, tea.Cmd) {
	if a.Workspace == nil {
		return a, nil
	}
	if msg.Err != "" {
		return a, a.Toasts.Push(ToastError, msg.Err)
	}
	return a, tea.Batch(
		a.Toasts.Push(ToastInfo, "deleted "+msg.Filename),
		a.Workspace.Documents.SetLoading(true),
		loadDocumentsCmd(a.Client),
	)
}

func (a *appModelAdapter) handleCompareFinished(msg CompareFinishedMsg) (tea.Model, tea.Cmd) {
	if a.Workspace == nil {
		return a, nil
	}
	if msg.Err != "" {
		a.Workspace.Compare.SetError(msg.Err)
		return a, a.Toasts.Push(ToastError, msg.Err)
	}
	a.Workspace.Compare.ShowResult(msg.Result)
	return a, nil
}

func (a *appModelAdapter) toggleTheme() tea.Cmd {
	next := "dark"
	if ActiveTheme().Name == "dark" {
		next = "light"
	}
	p := SetTheme(next)
	var cmds []tea.Cmd
	if a.Workspace != nil {
		_, cmd := a.Workspace.Update(ThemeChangedMsg{Palette: p})
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, a.Toasts.Push(ToastInfo, next+" theme"))
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeWorkspace && a.Workspace != nil {
		return a.Workspace
	}
	if a.Auth == nil {
		a.Auth = NewAuthView()
	}
	return a.Auth
}

func (a *appModelAdapter) updateCurrent(msg tea.Msg) tea.Cmd {
	v, cmd := a.currentView().Update(msg)
	switch a.Mode {
	case ModeAuth:
		if av, ok := v.(*AuthView); ok {
			a.Auth = av
		}
	case ModeWorkspace:
		if wv, ok := v.(*WorkspaceView); ok {
			a.Workspace = wv
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()

	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, modal)
		} else {
			base = modal
		}
	}

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	if t := a.Toasts.View(); t != "" {
		base += "\n" + t
	}
	return base
}
