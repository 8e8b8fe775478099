package ui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
)

// Commands wrap the API client in tea.Cmd closures. Each runs one request
// to completion and reports via a message; there is no retry, cancellation,
// or deduplication between them.

// loginCmd exchanges credentials for a session.
func loginCmd(c *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return AuthFailedMsg{Err: "no server configured"}
		}
		sess, err := c.Login(context.Background(), email, password)
		if err != nil {
			return AuthFailedMsg{Err: err.Error()}
		}
		return SessionStartedMsg{Session: sess}
	}
}

// registerCmd creates an account and starts its session.
func registerCmd(c *api.Client, email, password, name string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return AuthFailedMsg{Err: "no server configured"}
		}
		sess, err := c.Register(context.Background(), email, password, name)
		if err != nil {
			return AuthFailedMsg{Err: err.Error()}
		}
		return SessionStartedMsg{Session: sess}
	}
}

// loadDocumentsCmd fetches the document listing.
func loadDocumentsCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return DocumentsLoadedMsg{Err: "no server configured"}
		}
		docs, err := c.ListDocuments(context.Background())
		if err != nil {
			return DocumentsLoadedMsg{Err: err.Error(), Unauthorized: api.IsAuthError(err)}
		}
		return DocumentsLoadedMsg{Docs: docs}
	}
}

// uploadCmd reads the staged file and sends it as multipart form data.
func uploadCmd(c *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return UploadFinishedMsg{Err: "no server configured"}
		}
		f, err := os.Open(path)
		if err != nil {
			return UploadFinishedMsg{Err: err.Error()}
		}
		defer f.Close()

		doc, err := c.Upload(context.Background(), filepath.Base(path), f)
		if err != nil {
			return UploadFinishedMsg{Err: err.Error()}
		}
		return UploadFinishedMsg{Doc: doc}
	}
}

// summarizeCmd requests a server-side summary of one document.
func summarizeCmd(c *api.Client, documentID, filename string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return SummaryReadyMsg{Err: "no server configured"}
		}
		s, err := c.Summarize(context.Background(), documentID)
		if err != nil {
			return SummaryReadyMsg{Filename: filename, Err: err.Error()}
		}
		return SummaryReadyMsg{Filename: filename, Summary: s}
	}
}

// compareCmd requests a server-side diff of two documents.
func compareCmd(c *api.Client, req CompareRequestMsg) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return CompareFinishedMsg{Err: "no server configured"}
		}
		res, err := c.Compare(context.Background(), req.LeftID, req.RightID)
		if err != nil {
			return CompareFinishedMsg{Err: err.Error()}
		}
		return CompareFinishedMsg{Result: res}
	}
}

// askCmd sends one chat question.
func askCmd(c *api.Client, question string) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return AnswerReceivedMsg{Question: question, Err: "no server configured"}
		}
		a, err := c.Ask(context.Background(), question)
		if err != nil {
			return AnswerReceivedMsg{Question: question, Err: err.Error()}
		}
		return AnswerReceivedMsg{Question: question, Answer: a}
	}
}

// deleteDocumentCmd removes a document server-side.
func deleteDocumentCmd(c *api.Client, doc api.Document) tea.Cmd {
	return func() tea.Msg {
		if c == nil {
			return DocumentDeletedMsg{ID: doc.ID, Filename: doc.Filename, Err: "no server configured"}
		}
		if err := c.DeleteDocument(context.Background(), doc.ID); err != nil {
			return DocumentDeletedMsg{ID: doc.ID, Filename: doc.Filename, Err: err.Error()}
		}
		return DocumentDeletedMsg{ID: doc.ID, Filename: doc.Filename}
	}
}
