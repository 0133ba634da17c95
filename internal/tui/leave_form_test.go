package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"staffdesk-cli/internal/calendar"
	"staffdesk-cli/internal/config"
)

func newTestLeaveForm() leaveForm {
	return newLeaveForm(LeaveFormOptions{
		Screen: config.Resolved{
			Screen: "leave",
			Title:  "Leave dates",
			Date:   calendar.Date{Day: 5, Month: 5, Year: 2025},
			Style:  calendar.SlashShortYear,
		},
		Today:    calendar.Date{Day: 5, Month: 5, Year: 2025},
		Employee: "Asha",
	})
}

// send feeds msg to the form and then any message its command produces.
func send(t *testing.T, m leaveForm, msg tea.Msg) leaveForm {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(leaveForm)
	if cmd != nil {
		if out := cmd(); out != nil {
			switch out.(type) {
			case datePickedMsg, datePickerClosedMsg:
				next, _ = m.Update(out)
				m = next.(leaveForm)
			}
		}
	}
	return m
}

func TestLeaveForm_PickBothDatesAndSubmit(t *testing.T) {
	m := newTestLeaveForm()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != leaveFieldFrom {
		t.Fatalf("expected focus on From, got %v", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker == nil {
		t.Fatalf("expected picker to open")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker != nil {
		t.Fatalf("expected picker to close after pick")
	}
	if m.from.text != "05/05/25" {
		t.Fatalf("expected from text 05/05/25, got %q", m.from.text)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.to.text != "07/05/25" {
		t.Fatalf("expected to text 07/05/25, got %q", m.to.text)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(leaveForm)
	if m.result == nil {
		t.Fatalf("expected submit to succeed, err=%q", m.err)
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.result.Days != 3 || m.result.Employee != "Asha" {
		t.Fatalf("unexpected request %+v", *m.result)
	}
	if !strings.Contains(m.result.Text(), "05/05/25 to 07/05/25 (3 days)") {
		t.Fatalf("unexpected text %q", m.result.Text())
	}
}

func TestLeaveForm_ReopenedPickerStartsFromScreenDefault(t *testing.T) {
	m := newTestLeaveForm()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey(']'))
	m = send(t, m, runeKey(']'))
	if m.picker.Cursor() != (calendar.Cursor{Month: 7, Year: 2025}) {
		t.Fatalf("expected 7/2025, got %+v", m.picker.Cursor())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.picker != nil {
		t.Fatalf("expected picker closed")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker == nil || m.picker.Cursor() != (calendar.Cursor{Month: 5, Year: 2025}) {
		t.Fatalf("expected reopened picker at 5/2025")
	}
}

func TestLeaveForm_RejectsEndBeforeStart(t *testing.T) {
	m := newTestLeaveForm()
	from := calendar.Date{Day: 10, Month: 5, Year: 2025}
	to := calendar.Date{Day: 9, Month: 5, Year: 2025}
	m.from = dateField{date: &from, text: "10/05/25"}
	m.to = dateField{date: &to, text: "09/05/25"}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(leaveForm)
	if m.result != nil || cmd != nil {
		t.Fatalf("expected submit to be rejected")
	}
	if m.err != "end date is before start date" {
		t.Fatalf("unexpected error %q", m.err)
	}
}

func TestLeaveForm_RequiresEmployeeAndDates(t *testing.T) {
	m := newLeaveForm(LeaveFormOptions{Screen: config.Resolved{Date: calendar.Date{Day: 1, Month: 1, Year: 2025}}})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := next.(leaveForm).err; got != "employee is required" {
		t.Fatalf("unexpected error %q", got)
	}

	m = newTestLeaveForm()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := next.(leaveForm).err; got != "both dates are required" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestDaysInclusive_AcrossLeapDay(t *testing.T) {
	got := daysInclusive(calendar.Date{Day: 28, Month: 2, Year: 2024}, calendar.Date{Day: 1, Month: 3, Year: 2024})
	if got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestDaysInclusive_SpanLongerThanDuration(t *testing.T) {
	got := daysInclusive(calendar.Date{Day: 1, Month: 1, Year: 2000}, calendar.Date{Day: 1, Month: 1, Year: 2400})
	if got != 146098 {
		t.Fatalf("expected 146098 days, got %d", got)
	}
}

func TestLeaveForm_CtrlCQuitsWhilePickerOpen(t *testing.T) {
	m := newTestLeaveForm()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker == nil {
		t.Fatalf("expected picker open")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(leaveForm)
	if !m.cancelled || m.result != nil {
		t.Fatalf("expected form cancelled without a result")
	}
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
