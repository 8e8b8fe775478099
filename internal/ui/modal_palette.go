package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// PaletteCommand is one entry in the command palette.
type PaletteCommand struct {
	Name string
	Msg  tea.Msg
}

// paletteItem implements list.Item for PaletteCommand.
type paletteItem struct {
	PaletteCommand
}

func (p paletteItem) FilterValue() string { return p.Name }
func (p paletteItem) Title() string       { return p.Name }
func (p paletteItem) Description() string { return "" }

// PaletteModal is the filterable command palette. Enter dispatches the
// selected command's message; Esc dismisses.
type PaletteModal struct {
	list list.Model
}

// Ensure PaletteModal implements View.
var _ View = (*PaletteModal)(nil)

// DefaultPaletteCommands is the standard workspace command set.
func DefaultPaletteCommands() []PaletteCommand {
	return []PaletteCommand{
		{Name: "Go to upload", Msg: SwitchTabMsg{Tab: TabUpload}},
		{Name: "Go to documents", Msg: SwitchTabMsg{Tab: TabDocuments}},
		{Name: "Go to compare", Msg: SwitchTabMsg{Tab: TabCompare}},
		{Name: "Go to chat", Msg: SwitchTabMsg{Tab: TabChat}},
		{Name: "Refresh documents", Msg: RefreshDocumentsMsg{}},
		{Name: "Toggle theme", Msg: ToggleThemeMsg{}},
		{Name: "Sign out", Msg: LogoutMsg{}},
		{Name: "Quit", Msg: tea.QuitMsg{}},
	}
}

// NewPaletteModal creates a palette over the given commands.
func NewPaletteModal(commands []PaletteCommand) *PaletteModal {
	items := make([]list.Item, len(commands))
	for i, c := range commands {
		items[i] = paletteItem{PaletteCommand: c}
	}
	l := list.New(items, NewCompactListDelegate(), 44, 14)
	l.Title = "Commands"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &PaletteModal{list: l}
}

// Filtering reports whether the fuzzy filter is capturing input, in which
// case Esc belongs to the list rather than the overlay dismiss.
func (m *PaletteModal) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Init implements View.
func (m *PaletteModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *PaletteModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the fuzzy filter is typing, Esc/Enter belong to the list.
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "esc":
				return m, func() tea.Msg { return DismissModalMsg{} }
			case "enter":
				if sel, ok := m.list.SelectedItem().(paletteItem); ok {
					cmdMsg := sel.Msg
					return m, tea.Batch(
						func() tea.Msg { return DismissModalMsg{} },
						func() tea.Msg { return cmdMsg },
					)
				}
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PaletteModal) View() string {
	help := "type to filter  Enter: run  Esc: close"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
