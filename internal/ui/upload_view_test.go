package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stagedUpload(t *testing.T) (*UploadView, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nda.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := NewUploadView()
	v.staged = path
	return v, path
}

func TestUploadView_ConfirmStagedFile(t *testing.T) {
	uv, path := stagedUpload(t)
	var v View = uv

	if !strings.Contains(v.View(), "nda.pdf") {
		t.Fatalf("staged file missing from view: %q", v.View())
	}

	v, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected upload command")
	}
	msg, ok := cmd().(UploadRequestMsg)
	if !ok {
		t.Fatalf("expected UploadRequestMsg, got %T", cmd())
	}
	if msg.Path != path {
		t.Errorf("path = %q, want %q", msg.Path, path)
	}
	_ = v
}

func TestUploadView_EscUnstages(t *testing.T) {
	uv, _ := stagedUpload(t)
	var v View = uv

	v, cmd := v.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("unstaging must not emit a command")
	}
	if uv.Staged() != "" {
		t.Error("esc should clear the staged file")
	}
	_ = v
}

func TestUploadView_BusyIgnoresKeys(t *testing.T) {
	uv, _ := stagedUpload(t)
	uv.SetBusy(true)
	var v View = uv

	_, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("busy upload must ignore enter")
	}
	if !strings.Contains(uv.View(), "uploading nda.pdf") {
		t.Errorf("busy indicator missing: %q", uv.View())
	}
}

func TestUploadView_ErrorClearsOnRetry(t *testing.T) {
	uv, _ := stagedUpload(t)
	uv.SetError("request /api/documents/upload: server error 413: file too large")

	if !strings.Contains(uv.View(), "file too large") {
		t.Fatalf("error missing: %q", uv.View())
	}
	if cmd := uv.SetBusy(true); cmd == nil {
		t.Fatal("SetBusy(true) must return the spinner tick")
	}
	if strings.Contains(uv.View(), "file too large") {
		t.Error("starting a new upload should clear the error")
	}
}
