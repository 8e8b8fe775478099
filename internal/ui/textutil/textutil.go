// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis is appended when text is truncated.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth visual columns, appending the
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(Ellipsis)
	if available < 0 {
		return Ellipsis
	}

	var width int
	out := make([]rune, 0, len(s))
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > available {
			break
		}
		out = append(out, r)
		width += rw
	}
	return string(out) + Ellipsis
}

// PadRight pads s with spaces to targetWidth visual columns, truncating if
// it is already wider.
func PadRight(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}
