package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of theme colors. Two palettes ship: dark (default)
// and light.
type Palette struct {
	Name      string
	Accent    string // titles, highlights
	Highlight string // selected items, borders
	Danger    string // errors, destructive confirms
	Success   string // added spans, success toasts
	Muted     string // dimmed text, hints
	Text      string // normal text
	Warning   string // warning toasts, risk notes
}

// DarkPalette is the default 256-color theme.
var DarkPalette = Palette{
	Name:      "dark",
	Accent:    "86",
	Highlight: "205",
	Danger:    "196",
	Success:   "78",
	Muted:     "241",
	Text:      "252",
	Warning:   "208",
}

// LightPalette targets light terminal backgrounds.
var LightPalette = Palette{
	Name:      "light",
	Accent:    "29",
	Highlight: "127",
	Danger:    "124",
	Success:   "28",
	Muted:     "245",
	Text:      "236",
	Warning:   "130",
}

// StyleSet holds the shared style definitions used across views and modals.
type StyleSet struct {
	Title        lipgloss.Style // bold accent, main titles
	TitleWarning lipgloss.Style // bold danger, destructive modal titles

	Box        lipgloss.Style // rounded border, highlight color
	BoxDanger  lipgloss.Style // rounded border, danger color
	BoxCompact lipgloss.Style // rounded border, less padding (lists)

	Selected lipgloss.Style // highlighted/selected items
	Muted    lipgloss.Style // dimmed text
	Normal   lipgloss.Style // normal text
	Hint     lipgloss.Style // help/hint text
	Status   lipgloss.Style // status indicators
	Empty    lipgloss.Style // empty-state text (italic)
	Added    lipgloss.Style // compare: added spans
	Removed  lipgloss.Style // compare: removed spans
	Warning  lipgloss.Style // risk notes, warning toasts

	TabActive   lipgloss.Style // active workspace tab
	TabInactive lipgloss.Style // inactive workspace tabs
}

func buildStyles(p Palette) StyleSet {
	return StyleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		TitleWarning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Danger)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(1, 2).
			Margin(1),
		BoxDanger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Danger)).
			Padding(1, 2).
			Margin(1),
		BoxCompact: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(0, 1).
			Margin(1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Italic(true),
		Added: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Removed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)).
			Strikethrough(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
	}
}

// Styles is the active style set. Views read it at render time so a theme
// switch takes effect on the next frame; only cached list delegates need an
// explicit refresh (see ThemeChangedMsg handling).
var Styles = buildStyles(DarkPalette)

var activePalette = DarkPalette

// SetTheme switches the active palette by name. Unknown names fall back to
// dark. Returns the palette that ended up active.
func SetTheme(name string) Palette {
	switch name {
	case "light":
		activePalette = LightPalette
	default:
		activePalette = DarkPalette
	}
	Styles = buildStyles(activePalette)
	return activePalette
}

// ActiveTheme returns the palette currently in effect.
func ActiveTheme() Palette {
	return activePalette
}

// NewCompactListDelegate returns a list delegate with zero spacing wired to
// the active style set. Rebuilt by views on theme change.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
