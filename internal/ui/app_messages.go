package ui

import (
	"lexterm/internal/api"
)

// AuthSubmittedMsg is sent when the auth form is submitted.
type AuthSubmittedMsg struct {
	Register bool
	Email    string
	Password string
	Name     string // register only
}

// SessionStartedMsg is sent when login/register succeeded (or a cached
// session was restored) and the app should enter the workspace.
type SessionStartedMsg struct {
	Session  api.Session
	Restored bool // true when loaded from the credential cache
}

// AuthFailedMsg carries the inline error for the auth form.
type AuthFailedMsg struct {
	Err string
}

// LogoutMsg clears the session and returns to the auth screen.
type LogoutMsg struct{}

// RefreshDocumentsMsg triggers a reload of the document list.
type RefreshDocumentsMsg struct{}

// DocumentsLoadedMsg delivers the document listing (or the fetch error).
// Unauthorized marks a 401/403, which invalidates a cached session.
type DocumentsLoadedMsg struct {
	Docs         []api.Document
	Err          string
	Unauthorized bool
}

// UploadRequestMsg is sent when the user confirms a file in the upload panel.
type UploadRequestMsg struct {
	Path string
}

// UploadFinishedMsg reports the outcome of one upload.
type UploadFinishedMsg struct {
	Doc api.Document
	Err string
}

// SummarizeRequestMsg asks the server to summarize the selected document.
type SummarizeRequestMsg struct {
	DocumentID string
	Filename   string
}

// SummaryReadyMsg delivers a summary for display in the summary overlay.
type SummaryReadyMsg struct {
	Filename string
	Summary  api.Summary
	Err      string
}

// ShowDeleteDocumentMsg opens the delete confirm for the selected document.
type ShowDeleteDocumentMsg struct{}

// DeleteDocumentMsg is sent when the user confirms deletion.
type DeleteDocumentMsg struct {
	Doc api.Document
}

// DocumentDeletedMsg reports the outcome of a delete.
type DocumentDeletedMsg struct {
	ID       string
	Filename string
	Err      string
}

// CompareRequestMsg is sent when both sides of a comparison are chosen.
type CompareRequestMsg struct {
	LeftID    string
	RightID   string
	LeftName  string
	RightName string
}

// CompareFinishedMsg delivers the server-side diff (or the error).
type CompareFinishedMsg struct {
	Result api.CompareResult
	Err    string
}

// AskSubmittedMsg is sent when a chat question is submitted.
type AskSubmittedMsg struct {
	Question string
}

// AnswerReceivedMsg delivers one chat answer (or an error turn).
type AnswerReceivedMsg struct {
	Question string
	Answer   api.ChatAnswer
	Err      string
}

// SwitchTabMsg activates a workspace tab.
type SwitchTabMsg struct {
	Tab Tab
}

// ShowPaletteMsg opens the command palette overlay.
type ShowPaletteMsg struct{}

// ToggleThemeMsg flips between the dark and light palettes.
type ToggleThemeMsg struct{}

// ThemeChangedMsg tells views to rebuild any cached styles (list delegates).
type ThemeChangedMsg struct {
	Palette Palette
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// ToastMsg enqueues a transient notice in the status area.
type ToastMsg struct {
	Level ToastLevel
	Text  string
}
