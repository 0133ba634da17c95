package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	modalMinBodyWidth = 24
	modalMaxBodyWidth = 56
)

// modalBodyWidth is the usable text width inside a modal for a terminal of
// the given width (0 when unknown).
func modalBodyWidth(termWidth int) int {
	if termWidth <= 0 {
		return 40
	}
	w := termWidth - 8
	if w > modalMaxBodyWidth {
		w = modalMaxBodyWidth
	}
	if w < modalMinBodyWidth {
		w = modalMinBodyWidth
	}
	return w
}

func renderModalBox(termWidth int, title, body string) string {
	bodyW := modalBodyWidth(termWidth)
	header := lipgloss.NewStyle().
		Width(bodyW).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(" " + truncateWidth(title, bodyW-2))
	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted)
	return box.Render(header + "\n\n" + body)
}

// renderInputLine renders a text input as exactly one line of bodyW columns.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate styling so a cut sequence cannot bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

func truncateWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Truncate(s, w, "…")
}

// centerIn centres s on a line of width w, ANSI-aware.
func centerIn(s string, w int) string {
	sw := xansi.StringWidth(s)
	if sw >= w {
		return s
	}
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// placeCentered puts view in the middle of a width x height screen.
func placeCentered(width, height int, view string) string {
	if width <= 0 || height <= 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
