package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"staffdesk-cli/internal/calendar"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestPicker(t *testing.T, initial calendar.Date) DatePicker {
	t.Helper()
	p, err := NewDatePicker(PickerOptions{
		Title:   "Pick",
		Initial: initial,
		Today:   calendar.Date{Day: 5, Month: 5, Year: 2025},
		Style:   calendar.LongMonth,
	})
	if err != nil {
		t.Fatalf("NewDatePicker: %v", err)
	}
	return p
}

func TestDatePicker_PrevThreeTimesFromJanuary(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 1, Month: 1, Year: 2025})
	for i := 0; i < 3; i++ {
		p, _ = p.Update(runeKey('['))
	}
	if p.Cursor() != (calendar.Cursor{Month: 10, Year: 2024}) {
		t.Fatalf("expected 10/2024, got %+v", p.Cursor())
	}
	if want := (calendar.Row{calendar.Blank, 1, 2, 3, 4, 5, 6}); p.Grid()[0] != want {
		t.Fatalf("expected first row %v, got %v", want, p.Grid()[0])
	}
}

func TestDatePicker_NextRollsYearAndRebuildsGrid(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 31, Month: 12, Year: 2024})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if p.Cursor() != (calendar.Cursor{Month: 1, Year: 2025}) {
		t.Fatalf("expected 1/2025, got %+v", p.Cursor())
	}
	want, _ := calendar.BuildGrid(2025, 1)
	if len(p.Grid()) != len(want) || p.Grid()[0] != want[0] {
		t.Fatalf("grid not rebuilt for January 2025")
	}

	// Focus is clamped into shorter months.
	p = newTestPicker(t, calendar.Date{Day: 31, Month: 1, Year: 2024})
	p, _ = p.Update(runeKey(']'))
	if got := p.Focused(); got != (calendar.Date{Day: 29, Month: 2, Year: 2024}) {
		t.Fatalf("expected focus clamped to 29 Feb 2024, got %+v", got)
	}
}

func TestDatePicker_ArrowKeysCrossMonthBoundaries(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 1, Month: 3, Year: 2024})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := p.Focused(); got != (calendar.Date{Day: 29, Month: 2, Year: 2024}) {
		t.Fatalf("expected 29 Feb 2024, got %+v", got)
	}

	p = newTestPicker(t, calendar.Date{Day: 28, Month: 12, Year: 2024})
	p, _ = p.Update(runeKey('j'))
	if got := p.Focused(); got != (calendar.Date{Day: 4, Month: 1, Year: 2025}) {
		t.Fatalf("expected 4 Jan 2025, got %+v", got)
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.Focused(); got != (calendar.Date{Day: 28, Month: 12, Year: 2024}) {
		t.Fatalf("expected back on 28 Dec 2024, got %+v", got)
	}
}

func TestDatePicker_SelectEmitsFormattedDate(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 1, Month: 4, Year: 2025})
	p, _ = p.Update(runeKey('t'))
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command on select")
	}
	msg, ok := cmd().(datePickedMsg)
	if !ok {
		t.Fatalf("expected datePickedMsg")
	}
	if msg.Text != "05 May 2025" || msg.Date != (calendar.Date{Day: 5, Month: 5, Year: 2025}) {
		t.Fatalf("unexpected pick %+v", msg)
	}
}

func TestDatePicker_CancelEmitsClosed(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 1, Month: 4, Year: 2025})
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected a command on cancel")
	}
	if _, ok := cmd().(datePickerClosedMsg); !ok {
		t.Fatalf("expected datePickerClosedMsg")
	}
}

func TestDatePicker_ViewShowsLabelHeaderAndDays(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 5, Month: 5, Year: 2025})
	p.SetWidth(80)
	v := xansi.Strip(p.View())
	for _, want := range []string{"Pick", "May 2025", "Mo Tu We Th Fr Sa Su", " 1  2  3  4", "26 27 28 29 30 31"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, v)
		}
	}
}

func TestNewDatePicker_InvalidInitialMonth(t *testing.T) {
	if _, err := NewDatePicker(PickerOptions{Initial: calendar.Date{Day: 1, Month: 13, Year: 2025}}); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestPickerProgram_QuitsWithResult(t *testing.T) {
	p := newTestPicker(t, calendar.Date{Day: 5, Month: 5, Year: 2025})
	var m tea.Model = pickerProgram{picker: p}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())
	res := m.(pickerProgram).result
	if res == nil || res.Formatted != "05 May 2025" || res.ISO != "2025-05-05" {
		t.Fatalf("unexpected result %+v", res)
	}
}
