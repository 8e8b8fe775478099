package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
	"lexterm/internal/ui/textutil"
)

// chatTurn is one question/answer exchange in the transcript.
type chatTurn struct {
	question string
	answer   api.ChatAnswer
	errText  string
	pending  bool
}

// ChatView is the question-answering panel: a transcript viewport over the
// uploaded corpus plus a single-line question input.
type ChatView struct {
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	turns    []chatTurn
	width    int
	height   int
}

// Ensure ChatView implements View.
var _ View = (*ChatView)(nil)

// NewChatView creates an empty chat panel with the input focused.
func NewChatView() *ChatView {
	ti := textinput.New()
	ti.Placeholder = "Ask about your documents…"
	ti.Width = 70
	ti.Focus()

	vp := viewport.New(78, 14)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &ChatView{input: ti, viewport: vp, spinner: s}
}

// Pending reports whether a question is in flight.
func (v *ChatView) Pending() bool {
	return len(v.turns) > 0 && v.turns[len(v.turns)-1].pending
}

// Turns returns the transcript length.
func (v *ChatView) Turns() int { return len(v.turns) }

// BeginTurn appends a pending turn for the submitted question.
func (v *ChatView) BeginTurn(question string) tea.Cmd {
	v.turns = append(v.turns, chatTurn{question: question, pending: true})
	v.refreshTranscript()
	return v.spinner.Tick
}

// FinishTurn resolves the pending turn with an answer or an error.
func (v *ChatView) FinishTurn(msg AnswerReceivedMsg) {
	for i := len(v.turns) - 1; i >= 0; i-- {
		if v.turns[i].pending {
			v.turns[i].pending = false
			v.turns[i].answer = msg.Answer
			v.turns[i].errText = msg.Err
			break
		}
	}
	v.refreshTranscript()
}

// Init implements View.
func (v *ChatView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *ChatView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.viewport.Width = max(40, msg.Width-4)
		v.viewport.Height = max(8, msg.Height-10)
		v.input.Width = max(30, msg.Width-10)
		v.refreshTranscript()
		return v, nil
	case spinner.TickMsg:
		if v.Pending() {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if v.input.Focused() {
				v.input.Blur()
				return v, nil
			}
			v.input.Focus()
			return v, textinput.Blink
		case "enter":
			if !v.input.Focused() {
				v.input.Focus()
				return v, textinput.Blink
			}
			return v, v.submit()
		}
		if !v.input.Focused() {
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit emits the question; one outstanding question at a time, matching
// the single-request-per-action model of the rest of the client.
func (v *ChatView) submit() tea.Cmd {
	if v.Pending() {
		return nil
	}
	question := strings.TrimSpace(v.input.Value())
	if question == "" {
		return nil
	}
	v.input.SetValue("")
	return func() tea.Msg { return AskSubmittedMsg{Question: question} }
}

// View implements View.
func (v *ChatView) View() string {
	var b strings.Builder
	title := "Chat"
	if v.Pending() {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(v.viewport.View() + "\n")
	b.WriteString(v.input.View() + "\n")
	hint := "enter: ask  esc: scroll transcript"
	if !v.input.Focused() {
		hint = "j/k: scroll  esc/enter: back to input"
	}
	b.WriteString(Styles.Hint.Render(hint))
	return b.String()
}

// refreshTranscript rebuilds the viewport content from the turns.
func (v *ChatView) refreshTranscript() {
	if len(v.turns) == 0 {
		v.viewport.SetContent(Styles.Empty.Render("Ask a question about the documents you uploaded."))
		return
	}
	var lines []string
	for _, turn := range v.turns {
		lines = append(lines, Styles.Selected.Render("you ")+Styles.Normal.Render(turn.question))
		switch {
		case turn.pending:
			lines = append(lines, Styles.Muted.Render("  thinking…"))
		case turn.errText != "":
			lines = append(lines, Styles.TitleWarning.Render("  "+turn.errText))
		default:
			for _, line := range strings.Split(turn.answer.Answer, "\n") {
				lines = append(lines, Styles.Normal.Render("  "+line))
			}
			for _, src := range turn.answer.Sources {
				cite := "  ↳ " + src.Filename
				if src.Excerpt != "" {
					cite += ": “" + textutil.Truncate(src.Excerpt, 60) + "”"
				}
				lines = append(lines, Styles.Muted.Render(cite))
			}
		}
		lines = append(lines, "")
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
	v.viewport.GotoBottom()
}
