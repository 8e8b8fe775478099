package ui

import (
	"strings"
	"testing"

	"lexterm/internal/api"
)

func testDocs() []api.Document {
	return []api.Document{
		{ID: "d1", Filename: "nda.pdf", Size: 10240, Status: api.StatusReady},
		{ID: "d2", Filename: "lease.pdf", Size: 20480, Status: api.StatusProcessing},
		{ID: "d3", Filename: "msa.pdf", Size: 4096, Status: api.StatusFailed},
	}
}

func TestDocumentsView_ListsMetadata(t *testing.T) {
	v := NewDocumentsView()
	v.SetDocuments(testDocs())

	out := v.View()
	for _, want := range []string{"Documents (3)", "nda.pdf", "lease.pdf", "msa.pdf"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDocumentsView_EmptyState(t *testing.T) {
	v := NewDocumentsView()
	v.SetDocuments(nil)

	if !strings.Contains(v.View(), "No documents yet") {
		t.Errorf("empty state missing: %q", v.View())
	}
}

func TestDocumentsView_SelectedFollowsNavigation(t *testing.T) {
	v := NewDocumentsView()
	v.SetDocuments(testDocs())

	doc, ok := v.Selected()
	if !ok || doc.ID != "d1" {
		t.Fatalf("initial selection = %+v ok=%v", doc, ok)
	}

	var view View = v
	view, _ = view.Update(keyMsg("j"))
	doc, ok = view.(*DocumentsView).Selected()
	if !ok || doc.ID != "d2" {
		t.Errorf("after j: selection = %+v", doc)
	}
}

func TestDocumentsView_SummarizeKeyEmitsRequest(t *testing.T) {
	v := NewDocumentsView()
	v.SetDocuments(testDocs())

	var view View = v
	_, cmd := view.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected summarize command")
	}
	msg, ok := cmd().(SummarizeRequestMsg)
	if !ok {
		t.Fatalf("expected SummarizeRequestMsg, got %T", cmd())
	}
	if msg.DocumentID != "d1" || msg.Filename != "nda.pdf" {
		t.Errorf("unexpected request: %+v", msg)
	}
}

func TestDocumentsView_RefreshKey(t *testing.T) {
	v := NewDocumentsView()
	var view View = v

	_, cmd := view.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if _, ok := cmd().(RefreshDocumentsMsg); !ok {
		t.Errorf("expected RefreshDocumentsMsg, got %T", cmd())
	}
}

func TestDocumentsView_DeleteKeyNeedsSelection(t *testing.T) {
	empty := NewDocumentsView()
	var view View = empty
	_, cmd := view.Update(keyMsg("d"))
	if cmd != nil {
		t.Error("delete with no documents must be a no-op")
	}

	v := NewDocumentsView()
	v.SetDocuments(testDocs())
	view = v
	_, cmd = view.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	if _, ok := cmd().(ShowDeleteDocumentMsg); !ok {
		t.Errorf("expected ShowDeleteDocumentMsg, got %T", cmd())
	}
}

func TestDocumentsView_ErrorShownInline(t *testing.T) {
	v := NewDocumentsView()
	v.SetError("request /api/documents: connection refused")

	if !strings.Contains(v.View(), "connection refused") {
		t.Errorf("error missing from view: %q", v.View())
	}
}
