package tui

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"staffdesk-cli/internal/calendar"
)

// ErrCancelled is returned when the user closes a program without a result.
var ErrCancelled = errors.New("cancelled")

// PickResult is the outcome of a standalone picker run.
type PickResult struct {
	Date      calendar.Date `json:"date"`
	ISO       string        `json:"iso"`
	Formatted string        `json:"text"`
}

func (r PickResult) Text() string { return r.Formatted }

// pickerProgram hosts a DatePicker as a whole-screen program.
type pickerProgram struct {
	picker DatePicker
	width  int
	height int
	result *PickResult
}

func (m pickerProgram) Init() tea.Cmd { return nil }

func (m pickerProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case datePickedMsg:
		m.result = &PickResult{Date: msg.Date, ISO: msg.Date.ISO(), Formatted: msg.Text}
		return m, tea.Quit
	case datePickerClosedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m pickerProgram) View() string {
	return placeCentered(m.width, m.height, m.picker.View())
}

// RunPicker opens a date picker and blocks until a day is picked or the
// picker is cancelled (ErrCancelled).
func RunPicker(opts PickerOptions, progOpts ...tea.ProgramOption) (PickResult, error) {
	p, err := NewDatePicker(opts)
	if err != nil {
		return PickResult{}, err
	}
	applyColorProfilePreference()
	applyThemePreference()

	out, err := tea.NewProgram(pickerProgram{picker: p}, withAltScreen(progOpts)...).Run()
	if err != nil {
		return PickResult{}, err
	}
	res := out.(pickerProgram).result
	if res == nil {
		return PickResult{}, ErrCancelled
	}
	return *res, nil
}

// RunLeaveForm runs the leave request screen.
func RunLeaveForm(opts LeaveFormOptions, progOpts ...tea.ProgramOption) (LeaveRequest, error) {
	applyColorProfilePreference()
	applyThemePreference()

	out, err := tea.NewProgram(newLeaveForm(opts), withAltScreen(progOpts)...).Run()
	if err != nil {
		return LeaveRequest{}, err
	}
	m := out.(leaveForm)
	if m.result == nil {
		return LeaveRequest{}, ErrCancelled
	}
	return *m.result, nil
}

func withAltScreen(opts []tea.ProgramOption) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
}

func itoa(n int) string { return strconv.Itoa(n) }
