package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SendsCredentialsAndDecodesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])

		json.NewEncoder(w).Encode(Session{
			Token: "tok-abc",
			User:  User{ID: "u1", Email: "ada@example.com", Name: "Ada"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	sess, err := c.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, "Ada", sess.User.Name)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)

	assert.True(t, IsAuthError(err))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestListDocuments_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"documents": [
			{"id": "d1", "filename": "nda.pdf", "size": 1024, "status": "ready"},
			{"id": "d2", "filename": "lease.pdf", "size": 2048, "status": "processing"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-abc")

	docs, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "nda.pdf", docs[0].Filename)
	assert.Equal(t, StatusProcessing, docs[1].Status)
}

func TestUpload_MultipartBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "contract.pdf", header.Filename)

		json.NewEncoder(w).Encode(Document{
			ID: "d9", Filename: header.Filename, Size: header.Size, Status: StatusProcessing,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	doc, err := c.Upload(context.Background(), "contract.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "d9", doc.ID)
	assert.Equal(t, StatusProcessing, doc.Status)
}

func TestCompare_DecodesSpansAndConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "d1", body["left_id"])
		assert.Equal(t, "d2", body["right_id"])

		w.Write([]byte(`{
			"left_id": "d1", "right_id": "d2",
			"added": [{"text": "termination for convenience", "section": "9.2"}],
			"removed": [{"text": "automatic renewal"}],
			"confidence": 0.87
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Compare(context.Background(), "d1", "d2")
	require.NoError(t, err)
	require.Len(t, res.Added, 1)
	require.Len(t, res.Removed, 1)
	assert.Equal(t, "9.2", res.Added[0].Section)
	assert.InDelta(t, 0.87, res.Confidence, 1e-9)
}

func TestAsk_DecodesCitations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		w.Write([]byte(`{
			"answer": "The lease term is 24 months.",
			"sources": [{"document_id": "d2", "filename": "lease.pdf", "excerpt": "a term of twenty-four (24) months"}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	a, err := c.Ask(context.Background(), "How long is the lease?")
	require.NoError(t, err)
	assert.Contains(t, a.Answer, "24 months")
	require.Len(t, a.Sources, 1)
	assert.Equal(t, "lease.pdf", a.Sources[0].Filename)
}

func TestDeleteDocument(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.DeleteDocument(context.Background(), "d1"))
	assert.Equal(t, "/api/documents/d1", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestErrorEnvelope_PlainTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListDocuments(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
	assert.False(t, IsAuthError(err))
}

func TestSpanName(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/auth/login", "auth.login"},
		{http.MethodPost, "/api/documents/compare", "documents.compare"},
		{http.MethodGet, "/api/documents", "documents"},
		{http.MethodDelete, "/api/documents/d1", "documents.delete"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, spanName(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListDocuments(ctx)
	assert.Error(t, err)
}
