package ui

import (
	"strings"
	"testing"

	"lexterm/internal/api"
)

func TestChatView_SubmitQuestion(t *testing.T) {
	var v View = NewChatView()

	v = typeString(v, "How long is the lease?")
	v, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected ask command")
	}
	msg, ok := cmd().(AskSubmittedMsg)
	if !ok {
		t.Fatalf("expected AskSubmittedMsg, got %T", cmd())
	}
	if msg.Question != "How long is the lease?" {
		t.Errorf("question = %q", msg.Question)
	}
}

func TestChatView_EmptyQuestionIgnored(t *testing.T) {
	var v View = NewChatView()
	_, cmd := v.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("empty question must not submit")
	}
}

func TestChatView_TurnLifecycle(t *testing.T) {
	v := NewChatView()
	v.BeginTurn("What is the termination clause?")

	if !v.Pending() {
		t.Fatal("expected pending turn")
	}
	if !strings.Contains(v.View(), "thinking…") {
		t.Errorf("pending indicator missing: %q", v.View())
	}

	v.FinishTurn(AnswerReceivedMsg{
		Question: "What is the termination clause?",
		Answer: api.ChatAnswer{
			Answer: "Either party may terminate with 30 days notice.",
			Sources: []api.Citation{
				{DocumentID: "d1", Filename: "msa.pdf", Excerpt: "thirty (30) days prior written notice"},
			},
		},
	})

	if v.Pending() {
		t.Error("turn should resolve")
	}
	out := v.View()
	for _, want := range []string{"30 days notice", "msa.pdf", "thirty (30) days"} {
		if !strings.Contains(out, want) {
			t.Errorf("answer view missing %q", want)
		}
	}
}

func TestChatView_ErrorBecomesErrorTurn(t *testing.T) {
	v := NewChatView()
	v.BeginTurn("Is this enforceable?")
	v.FinishTurn(AnswerReceivedMsg{Question: "Is this enforceable?", Err: "server error 502: upstream unavailable"})

	if !strings.Contains(v.View(), "upstream unavailable") {
		t.Errorf("error turn missing: %q", v.View())
	}
}

func TestChatView_OneQuestionAtATime(t *testing.T) {
	v := NewChatView()
	v.BeginTurn("first question")

	var view View = v
	view = typeString(view, "second question")
	_, cmd := view.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("a pending question must block new submissions")
	}
}

func TestChatView_EscTogglesScrollFocus(t *testing.T) {
	v := NewChatView()
	var view View = v

	view, _ = view.Update(keyMsg("esc"))
	if v.input.Focused() {
		t.Fatal("esc should blur the input")
	}
	view, _ = view.Update(keyMsg("esc"))
	if !v.input.Focused() {
		t.Error("esc again should refocus the input")
	}
	_ = view
}
