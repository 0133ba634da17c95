package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"staffdesk-cli/internal/calendar"
)

// gridWidth is 7 two-column cells with single-space gaps.
const gridWidth = 7*3 - 1

func (p DatePicker) View() string {
	return renderModalBox(p.width, p.title, p.body())
}

func (p DatePicker) body() string {
	bodyW := modalBodyWidth(p.width)
	var b strings.Builder

	label := lipgloss.NewStyle().Bold(true).Render("‹ " + p.cursor.Label() + " ›")
	b.WriteString(centerIn(label, gridWidth))
	b.WriteString("\n\n")

	hdr := make([]string, len(calendar.WeekdayLabels))
	for i, l := range calendar.WeekdayLabels {
		hdr[i] = styleMuted().Render(l)
	}
	b.WriteString(strings.Join(hdr, " "))
	b.WriteString("\n")

	for _, row := range p.grid {
		cells := make([]string, len(row))
		for col, c := range row {
			cells[col] = p.renderCell(c, col)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	if p.selected != nil {
		if txt, err := p.selected.Format(p.style); err == nil {
			b.WriteString("\n")
			b.WriteString(styleMuted().Render("current: " + txt))
			b.WriteString("\n")
		}
	}

	p.help.Width = bodyW
	b.WriteString("\n")
	b.WriteString(p.help.View(p.keys))
	return b.String()
}

func (p DatePicker) renderCell(c calendar.Cell, col int) string {
	if c.IsBlank() {
		return "  "
	}
	txt := fmt.Sprintf("%2d", int(c))
	d := calendar.Date{Day: int(c), Month: p.cursor.Month, Year: p.cursor.Year}

	st := lipgloss.NewStyle()
	if col >= 5 {
		st = st.Foreground(colorWeekend)
	}
	if d == p.today {
		st = st.Foreground(colorAccent).Bold(true)
	}
	if p.selected != nil && d == *p.selected {
		st = st.Underline(true)
	}
	if int(c) == p.focus {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(txt)
}
