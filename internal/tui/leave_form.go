package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"staffdesk-cli/internal/calendar"
	"staffdesk-cli/internal/config"
)

type leaveField int

const (
	leaveFieldEmployee leaveField = iota
	leaveFieldFrom
	leaveFieldTo
	leaveFieldReason
	leaveFieldCount
)

// LeaveRequest is what the leave form produces on submit.
type LeaveRequest struct {
	Employee string        `json:"employee"`
	From     calendar.Date `json:"from"`
	To       calendar.Date `json:"to"`
	FromText string        `json:"fromText"`
	ToText   string        `json:"toText"`
	Days     int           `json:"days"`
	Reason   string        `json:"reason,omitempty"`
}

func (r LeaveRequest) Text() string {
	s := r.Employee + ": " + r.FromText + " to " + r.ToText + " (" + plural(r.Days, "day") + ")"
	if r.Reason != "" {
		s += "\n" + r.Reason
	}
	return s
}

// dateField is a form field filled by the picker.
type dateField struct {
	date *calendar.Date
	text string
}

// LeaveFormOptions configure the leave screen.
type LeaveFormOptions struct {
	Screen   config.Resolved
	Today    calendar.Date
	Employee string
	Logger   *zap.Logger
}

type leaveForm struct {
	screen config.Resolved
	today  calendar.Date

	employee textinput.Model
	reason   textinput.Model
	from     dateField
	to       dateField
	focus    leaveField

	picker      *DatePicker
	pickerField leaveField

	keys formKeyMap
	help help.Model
	log  *zap.Logger
	err  string

	width  int
	height int

	result    *LeaveRequest
	cancelled bool
}

func newLeaveForm(opts LeaveFormOptions) leaveForm {
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	emp := textinput.New()
	emp.Placeholder = "Employee name"
	emp.CharLimit = 80
	emp.SetValue(opts.Employee)
	emp.Focus()

	reason := textinput.New()
	reason.Placeholder = "Reason (optional)"
	reason.CharLimit = 200

	return leaveForm{
		screen:   opts.Screen,
		today:    opts.Today,
		employee: emp,
		reason:   reason,
		focus:    leaveFieldEmployee,
		keys:     newFormKeyMap(),
		help:     help.New(),
		log:      lg,
	}
}

func (m leaveForm) Init() tea.Cmd { return textinput.Blink }

func (m leaveForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.picker != nil {
			m.picker.SetWidth(msg.Width)
		}
		return m, nil
	case datePickedMsg:
		f := m.dateFieldFor(m.pickerField)
		d := msg.Date
		f.date = &d
		f.text = msg.Text
		m.picker = nil
		m.err = ""
		return m, nil
	case datePickerClosedMsg:
		// The cursor is discarded; the next open starts from the screen default.
		m.picker = nil
		return m, nil
	}

	if m.picker != nil {
		if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyCtrlC {
			m.picker = nil
			m.cancelled = true
			return m, tea.Quit
		}
		p, cmd := m.picker.Update(msg)
		m.picker = &p
		return m, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Submit):
		req, err := m.submit()
		if err != "" {
			m.err = err
			return m, nil
		}
		m.result = &req
		m.log.Info("leave request submitted",
			zap.String("employee", req.Employee),
			zap.String("from", req.From.ISO()),
			zap.String("to", req.To.ISO()),
			zap.Int("days", req.Days),
		)
		return m, tea.Quit
	case key.Matches(km, m.keys.Next):
		m.setFocus((m.focus + 1) % leaveFieldCount)
		return m, nil
	case key.Matches(km, m.keys.Prev):
		m.setFocus((m.focus + leaveFieldCount - 1) % leaveFieldCount)
		return m, nil
	}

	if m.focus == leaveFieldFrom || m.focus == leaveFieldTo {
		switch {
		case key.Matches(km, m.keys.Open):
			return m.openPicker(m.focus)
		case key.Matches(km, m.keys.Clear):
			*m.dateFieldFor(m.focus) = dateField{}
		}
		return m, nil
	}
	if key.Matches(km, m.keys.Open) {
		m.setFocus((m.focus + 1) % leaveFieldCount)
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m leaveForm) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case leaveFieldEmployee:
		m.employee, cmd = m.employee.Update(msg)
	case leaveFieldReason:
		m.reason, cmd = m.reason.Update(msg)
	}
	return m, cmd
}

func (m *leaveForm) setFocus(f leaveField) {
	m.focus = f
	m.employee.Blur()
	m.reason.Blur()
	switch f {
	case leaveFieldEmployee:
		m.employee.Focus()
	case leaveFieldReason:
		m.reason.Focus()
	}
}

func (m *leaveForm) dateFieldFor(f leaveField) *dateField {
	if f == leaveFieldTo {
		return &m.to
	}
	return &m.from
}

func (m leaveForm) openPicker(f leaveField) (tea.Model, tea.Cmd) {
	title := m.screen.Title
	if f == leaveFieldFrom {
		title += ": from"
	} else {
		title += ": to"
	}
	p, err := NewDatePicker(PickerOptions{
		Title:    title,
		Initial:  m.screen.Date,
		Today:    m.today,
		Selected: m.dateFieldFor(f).date,
		Style:    m.screen.Style,
		Logger:   m.log,
	})
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	p.SetWidth(m.width)
	m.picker = &p
	m.pickerField = f
	return m, nil
}

// submit validates the form; a non-empty string is the validation message.
func (m leaveForm) submit() (LeaveRequest, string) {
	emp := strings.TrimSpace(m.employee.Value())
	if emp == "" {
		return LeaveRequest{}, "employee is required"
	}
	if m.from.date == nil || m.to.date == nil {
		return LeaveRequest{}, "both dates are required"
	}
	if m.to.date.Before(*m.from.date) {
		return LeaveRequest{}, "end date is before start date"
	}
	return LeaveRequest{
		Employee: emp,
		From:     *m.from.date,
		To:       *m.to.date,
		FromText: m.from.text,
		ToText:   m.to.text,
		Days:     daysInclusive(*m.from.date, *m.to.date),
		Reason:   strings.TrimSpace(m.reason.Value()),
	}, ""
}

func daysInclusive(from, to calendar.Date) int {
	a := time.Date(from.Year, time.Month(from.Month), from.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year, time.Month(to.Month), to.Day, 0, 0, 0, 0, time.UTC)
	return int((b.Unix()-a.Unix())/86400) + 1
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return itoa(n) + " " + word + "s"
}
