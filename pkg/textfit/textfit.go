// Package textfit fits strings into fixed-width terminal layouts.
//
// Widths are measured in terminal display columns rather than bytes or code
// points, so boxes stay aligned when content contains multi-byte or wide
// characters.
package textfit

import "github.com/mattn/go-runewidth"

// Pad returns s padded on the right with spaces to exactly width columns.
// Strings wider than width are cut to the first width columns instead.
func Pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// Shorten returns s unchanged when it fits in limit columns; otherwise the
// first limit columns followed by "...". An empty string stays empty.
func Shorten(s string, limit int) string {
	if s == "" {
		return ""
	}
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, "") + "..."
}
