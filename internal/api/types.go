package api

import "time"

// DocumentStatus mirrors the processing states reported by the analysis service.
type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// Document is the metadata the server returns for an uploaded document.
type Document struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Size       int64          `json:"size"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Summary is the server-generated summary of a single document.
type Summary struct {
	DocumentID string   `json:"document_id"`
	Text       string   `json:"text"`
	KeyPoints  []string `json:"key_points"`
	Risks      []string `json:"risks"`
}

// Span is a contiguous run of text the comparison marked as changed.
type Span struct {
	Text    string `json:"text"`
	Section string `json:"section,omitempty"`
}

// CompareResult holds the server-side diff of two documents.
type CompareResult struct {
	LeftID     string  `json:"left_id"`
	RightID    string  `json:"right_id"`
	Added      []Span  `json:"added"`
	Removed    []Span  `json:"removed"`
	Confidence float64 `json:"confidence"`
}

// Citation points at the source passage backing part of a chat answer.
type Citation struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Excerpt    string `json:"excerpt"`
}

// ChatAnswer is the server's response to one chat question.
type ChatAnswer struct {
	Answer  string     `json:"answer"`
	Sources []Citation `json:"sources"`
}
