package docs

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// markdownStyle picks a fixed glamour style. WithAutoStyle is avoided since
// it can block on terminal background queries.
func markdownStyle() string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return styles.NoTTYStyle
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STAFFDESK_TUI_THEME"))) {
	case "light":
		return styles.LightStyle
	case "ascii":
		return styles.AsciiStyle
	}
	return styles.DarkStyle
}

// Render renders md for a terminal of the given width.
func Render(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
