package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var leaveFieldLabels = [leaveFieldCount]string{"Employee", "From", "To", "Reason"}

func (m leaveForm) View() string {
	if m.picker != nil {
		return placeCentered(m.width, m.height, m.picker.View())
	}
	return placeCentered(m.width, m.height, renderModalBox(m.width, "Leave request", m.body()))
}

func (m leaveForm) body() string {
	bodyW := modalBodyWidth(m.width)
	labelSt := lipgloss.NewStyle().Width(10)
	activeSt := labelSt.Bold(true).Foreground(colorAccent)

	var lines []string
	for f := leaveField(0); f < leaveFieldCount; f++ {
		lbl := labelSt.Render(leaveFieldLabels[f])
		if f == m.focus {
			lbl = activeSt.Render(leaveFieldLabels[f])
		}
		lines = append(lines, lbl)
		lines = append(lines, renderInputLine(bodyW, m.fieldView(f)))
	}

	if m.err != "" {
		lines = append(lines, "", styleError().Render(m.err))
	}
	m.help.Width = bodyW
	lines = append(lines, "", m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m leaveForm) fieldView(f leaveField) string {
	switch f {
	case leaveFieldEmployee:
		return m.employee.View()
	case leaveFieldReason:
		return m.reason.View()
	}
	df := m.dateFieldFor(f)
	if df.text == "" {
		return styleMuted().Render("press enter to pick")
	}
	return df.text
}
