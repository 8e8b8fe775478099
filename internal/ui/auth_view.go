package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// authField indexes the focusable inputs on the auth screen.
type authField int

const (
	fieldEmail authField = iota
	fieldPassword
	fieldName // register only
)

// AuthView is the login/register screen shown until a session exists.
type AuthView struct {
	email    textinput.Model
	password textinput.Model
	name     textinput.Model

	registering bool
	focused     authField
	busy        bool
	errText     string
	spinner     spinner.Model
	width       int
}

// Ensure AuthView implements View.
var _ View = (*AuthView)(nil)

// NewAuthView creates the auth screen in login mode with email focused.
func NewAuthView() *AuthView {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "display name"
	name.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &AuthView{
		email:    email,
		password: password,
		name:     name,
		spinner:  s,
	}
}

// Registering reports whether the register form is active.
func (v *AuthView) Registering() bool { return v.registering }

// SetBusy marks a request in flight; inputs stop accepting submits.
func (v *AuthView) SetBusy(busy bool) tea.Cmd {
	v.busy = busy
	if busy {
		v.errText = ""
		return v.spinner.Tick
	}
	return nil
}

// SetError shows the inline error under the form.
func (v *AuthView) SetError(msg string) {
	v.busy = false
	v.errText = msg
}

// Init implements View.
func (v *AuthView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *AuthView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if v.busy {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		switch msg.String() {
		case "tab", "down":
			v.focusNext(1)
			return v, nil
		case "shift+tab", "up":
			v.focusNext(-1)
			return v, nil
		case "ctrl+r":
			v.toggleMode()
			return v, nil
		case "enter":
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	switch v.focused {
	case fieldEmail:
		v.email, cmd = v.email.Update(msg)
	case fieldPassword:
		v.password, cmd = v.password.Update(msg)
	case fieldName:
		v.name, cmd = v.name.Update(msg)
	}
	return v, cmd
}

// submit validates locally (non-empty only; the server owns real rules) and
// emits AuthSubmittedMsg.
func (v *AuthView) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	if email == "" || password == "" {
		v.errText = "email and password are required"
		return nil
	}
	name := strings.TrimSpace(v.name.Value())
	if v.registering && name == "" {
		v.errText = "display name is required"
		return nil
	}
	v.errText = ""
	return func() tea.Msg {
		return AuthSubmittedMsg{
			Register: v.registering,
			Email:    email,
			Password: password,
			Name:     name,
		}
	}
}

func (v *AuthView) toggleMode() {
	v.registering = !v.registering
	v.errText = ""
	if !v.registering && v.focused == fieldName {
		v.setFocus(fieldPassword)
	}
}

func (v *AuthView) focusNext(dir int) {
	fields := 2
	if v.registering {
		fields = 3
	}
	next := (int(v.focused) + dir + fields) % fields
	v.setFocus(authField(next))
}

func (v *AuthView) setFocus(f authField) {
	v.focused = f
	v.email.Blur()
	v.password.Blur()
	v.name.Blur()
	switch f {
	case fieldEmail:
		v.email.Focus()
	case fieldPassword:
		v.password.Focus()
	case fieldName:
		v.name.Focus()
	}
}

// View implements View.
func (v *AuthView) View() string {
	title := "Sign in"
	action := "sign in"
	toggleHint := "Ctrl+R: register instead"
	if v.registering {
		title = "Create account"
		action = "register"
		toggleHint = "Ctrl+R: sign in instead"
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("lexterm — legal document analysis") + "\n\n")
	b.WriteString(Styles.Normal.Render(title) + "\n\n")
	b.WriteString(v.email.View() + "\n")
	b.WriteString(v.password.View() + "\n")
	if v.registering {
		b.WriteString(v.name.View() + "\n")
	}
	b.WriteString("\n")

	if v.busy {
		b.WriteString(v.spinner.View() + Styles.Muted.Render(" contacting server…") + "\n")
	} else if v.errText != "" {
		b.WriteString(Styles.TitleWarning.Render(v.errText) + "\n")
	}

	b.WriteString("\n" + Styles.Hint.Render("Enter: "+action+"  Tab: next field  "+toggleHint))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ActiveTheme().Highlight)).
		Padding(1, 3).
		Margin(1, 2)
	return box.Render(b.String())
}
