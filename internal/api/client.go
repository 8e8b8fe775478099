// Package api is the HTTP client for the legal-document analysis service.
// All substantive work (extraction, summarization, diffing, chat reasoning)
// happens server-side; this package only shapes requests and decodes replies.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"lexterm/internal/trace"
)

// DefaultTimeout bounds every request. The service streams nothing, so a
// flat deadline is enough; there is deliberately no retry or backoff.
const DefaultTimeout = 60 * time.Second

// Client talks to the analysis service. Safe for use from tea.Cmd
// goroutines; the token may be swapped after login/logout.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  *trace.Exporter // nil when tracing is disabled

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTracer attaches an OTLP exporter; each call then runs inside a span.
func WithTracer(t *trace.Exporter) Option {
	return func(c *Client) { c.tracer = t }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
// An empty token clears it (logout).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	return s, err
}

// Register creates an account and returns the fresh session.
func (c *Client) Register(ctx context.Context, email, password, name string) (Session, error) {
	var s Session
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}, &s)
	return s, err
}

// ListDocuments fetches the caller's document metadata.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents", nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// Upload sends one file as multipart form data and returns the created
// document record. The reader is consumed fully before the request is built;
// legal documents are small enough that buffering is fine.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (Document, error) {
	var doc Document

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return doc, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return doc, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return doc, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/documents/upload", &buf)
	if err != nil {
		return doc, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	err = c.send(req, "documents.upload", &doc,
		attribute.String("document.filename", filename))
	return doc, err
}

// Summarize asks the service to summarize one document.
func (c *Client) Summarize(ctx context.Context, documentID string) (Summary, error) {
	var s Summary
	err := c.doJSON(ctx, http.MethodPost, "/api/documents/summarize", map[string]string{
		"document_id": documentID,
	}, &s)
	return s, err
}

// Compare diffs two documents server-side.
func (c *Client) Compare(ctx context.Context, leftID, rightID string) (CompareResult, error) {
	var res CompareResult
	err := c.doJSON(ctx, http.MethodPost, "/api/documents/compare", map[string]string{
		"left_id":  leftID,
		"right_id": rightID,
	}, &res)
	return res, err
}

// Ask sends one chat question grounded in the uploaded corpus.
func (c *Client) Ask(ctx context.Context, question string) (ChatAnswer, error) {
	var a ChatAnswer
	err := c.doJSON(ctx, http.MethodPost, "/api/chat", map[string]string{
		"question": question,
	}, &a)
	return a, err
}

// DeleteDocument removes a document and its derived artifacts.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/documents/"+documentID, nil, nil)
}

// doJSON issues one JSON request and decodes the reply into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, spanName(method, path), out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, span string, out any, attrs ...attribute.KeyValue) error {
	if c.tracer != nil {
		ctx, end := c.tracer.Start(req.Context(), span, append(attrs,
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		)...)
		req = req.WithContext(ctx)
		defer end()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// decodeAPIError prefers the server's {"error": "..."} envelope but
// tolerates plain-text bodies from proxies.
func decodeAPIError(status int, body []byte) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != "" {
			msg = envelope.Error
		} else {
			msg = envelope.Message
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
	}
	return &APIError{Status: status, Message: msg}
}

// spanName turns "POST /api/documents/compare" into "documents.compare".
// DELETE paths carry a document ID as their last segment; it is dropped to
// keep span names low-cardinality.
func spanName(method, path string) string {
	p := strings.TrimPrefix(path, "/api/")
	if method == http.MethodDelete {
		if i := strings.IndexByte(p, '/'); i > 0 {
			p = p[:i]
		}
		return p + ".delete"
	}
	return strings.ReplaceAll(p, "/", ".")
}
