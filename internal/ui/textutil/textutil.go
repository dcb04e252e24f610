// Package textutil provides unicode- and ANSI-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a plain string to maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// TruncateStyled truncates every line of a styled string to maxWidth columns
// without breaking escape sequences.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return strings.Repeat("\n", strings.Count(s, "\n"))
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, maxWidth, "")
	}
	return strings.Join(lines, "\n")
}

// Strip removes escape sequences.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Indent prefixes every line with n spaces.
func Indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// Blank returns a string with the same number of lines as s, all empty.
func Blank(s string) string {
	return strings.Repeat("\n", strings.Count(s, "\n"))
}

// PadRightVisual pads a plain string with spaces to targetWidth columns,
// truncating it if it is wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}
