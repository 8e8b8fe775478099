package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"lexterm/internal/ui/textutil"
)

// UploadView lets the user browse for a document and send it to the server.
// Selection is staged first so the upload is an explicit second step.
type UploadView struct {
	picker  filepicker.Model
	staged  string // absolute path awaiting confirmation
	busy    bool
	errText string
	spinner spinner.Model
}

// Ensure UploadView implements View.
var _ View = (*UploadView)(nil)

// NewUploadView creates the upload panel rooted at the user's home dir.
func NewUploadView() *UploadView {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".docx", ".txt", ".md"}
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	fp.Height = 12

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &UploadView{picker: fp, spinner: s}
}

// Staged returns the path awaiting upload confirmation, if any.
func (v *UploadView) Staged() string { return v.staged }

// SetBusy toggles the in-flight spinner.
func (v *UploadView) SetBusy(busy bool) tea.Cmd {
	v.busy = busy
	if busy {
		v.errText = ""
		return v.spinner.Tick
	}
	return nil
}

// SetError shows the inline upload error and clears the staged file.
func (v *UploadView) SetError(msg string) {
	v.busy = false
	v.errText = msg
}

// Clear resets staging after a finished upload.
func (v *UploadView) Clear() {
	v.busy = false
	v.staged = ""
}

// Init implements View.
func (v *UploadView) Init() tea.Cmd {
	return v.picker.Init()
}

// Update implements View.
func (v *UploadView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
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
		if v.staged != "" {
			switch msg.String() {
			case "enter", "y":
				path := v.staged
				return v, func() tea.Msg { return UploadRequestMsg{Path: path} }
			case "esc", "n":
				v.staged = ""
				return v, nil
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)

	if ok, path := v.picker.DidSelectFile(msg); ok {
		v.staged = path
		v.errText = ""
	}
	if ok, path := v.picker.DidSelectDisabledFile(msg); ok {
		v.errText = filepath.Base(path) + " is not a supported document type"
	}
	return v, cmd
}

// View implements View.
func (v *UploadView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Upload a document") + "\n")
	b.WriteString(Styles.Muted.Render("pdf, docx, txt, md") + "\n\n")

	switch {
	case v.busy:
		b.WriteString(v.spinner.View() + Styles.Muted.Render(" uploading "+filepath.Base(v.staged)+"…") + "\n")
	case v.staged != "":
		label := filepath.Base(v.staged)
		if info, err := os.Stat(v.staged); err == nil {
			label += "  " + humanize.Bytes(uint64(info.Size()))
		}
		b.WriteString(Styles.Selected.Render(textutil.Truncate(label, 60)) + "\n")
		b.WriteString(Styles.Hint.Render("enter: upload  esc: pick another") + "\n")
	default:
		b.WriteString(v.picker.View() + "\n")
		b.WriteString(Styles.Hint.Render("enter: stage file for upload"))
	}

	if v.errText != "" {
		b.WriteString("\n" + Styles.TitleWarning.Render(v.errText))
	}
	return b.String()
}
