package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to exactly width columns and height lines so that
// lipgloss.JoinHorizontal lines the board columns up without drift.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fitLine(ln, width))
	}
	for n := len(lines); n < height; n++ {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", width))
	}
	return b.String()
}

// fitLine clips or pads a single line to exactly width columns, ANSI-aware.
func fitLine(ln string, width int) string {
	// Plain ASCII short lines need no ANSI measuring.
	if len(ln) <= width && isPrintableASCII(ln) {
		return ln + strings.Repeat(" ", width-len(ln))
	}

	w := xansi.StringWidth(ln)
	switch {
	case w > width && width <= 0:
		return ""
	case w > width && width == 1:
		ln = xansi.Cut(ln, 0, 1)
	case w > width:
		ln = xansi.Cut(ln, 0, width-1) + "…"
	}
	if w = xansi.StringWidth(ln); w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
