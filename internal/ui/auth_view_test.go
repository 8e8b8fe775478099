package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestAuthView_SubmitLogin(t *testing.T) {
	var v View = NewAuthView()

	v = typeString(v, "ada@example.com")
	v, _ = v.Update(keyMsg("tab"))
	v = typeString(v, "hunter2")

	v, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg, ok := cmd().(AuthSubmittedMsg)
	if !ok {
		t.Fatalf("expected AuthSubmittedMsg, got %T", cmd())
	}
	if msg.Register {
		t.Error("login form must not set Register")
	}
	if msg.Email != "ada@example.com" || msg.Password != "hunter2" {
		t.Errorf("unexpected credentials: %+v", msg)
	}
	_ = v
}

func TestAuthView_EmptyFieldsShowInlineError(t *testing.T) {
	var v View = NewAuthView()

	v, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("empty form must not submit")
	}
	if !strings.Contains(v.View(), "email and password are required") {
		t.Errorf("inline error missing: %q", v.View())
	}
}

func TestAuthView_ToggleRegister(t *testing.T) {
	av := NewAuthView()
	var v View = av

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !av.Registering() {
		t.Fatal("ctrl+r should switch to register mode")
	}
	if !strings.Contains(v.View(), "Create account") {
		t.Error("register title missing")
	}

	// Register requires a display name.
	v = typeString(v, "ada@example.com")
	v, _ = v.Update(keyMsg("tab"))
	v = typeString(v, "hunter2")
	v, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("register without name must not submit")
	}
	if !strings.Contains(v.View(), "display name is required") {
		t.Errorf("name error missing: %q", v.View())
	}

	v, _ = v.Update(keyMsg("tab"))
	v = typeString(v, "Ada")
	v, cmd = v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg := cmd().(AuthSubmittedMsg)
	if !msg.Register || msg.Name != "Ada" {
		t.Errorf("unexpected register payload: %+v", msg)
	}
}

func TestAuthView_ServerErrorShownInline(t *testing.T) {
	av := NewAuthView()
	av.SetError("server error 401: invalid email or password")

	if !strings.Contains(av.View(), "invalid email or password") {
		t.Errorf("server error missing from view: %q", av.View())
	}
}

func TestAuthView_BusyIgnoresSubmit(t *testing.T) {
	av := NewAuthView()
	av.SetBusy(true)
	var v View = av

	_, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("busy form must ignore enter")
	}
	if !strings.Contains(av.View(), "contacting server") {
		t.Errorf("busy indicator missing: %q", av.View())
	}
}
