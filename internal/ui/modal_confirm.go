package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
)

// ConfirmModal is a generic confirmation modal. Enter or y confirms; Esc
// cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning details
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds warning details under the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteDocumentConfirmModal confirms deletion of a document and its
// server-side artifacts.
func NewDeleteDocumentConfirmModal(doc api.Document) *ConfirmModal {
	return NewConfirmModal(
		"Delete document?",
		fmt.Sprintf("Document: %s", doc.Filename),
		func() tea.Msg { return DeleteDocumentMsg{Doc: doc} },
	).WithDetails("Summaries and comparisons for it will also be removed")
}

// NewLogoutConfirmModal confirms sign-out.
func NewLogoutConfirmModal() *ConfirmModal {
	return NewConfirmModal(
		"Sign out?",
		"The cached session on this machine will be cleared",
		func() tea.Msg { return LogoutMsg{} },
	)
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Warning.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
