package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"staffdesk-cli/internal/calendar"
)

// PickerOptions seed a DatePicker.
type PickerOptions struct {
	Title string
	// Initial is where the cursor and day focus start every time the picker opens.
	Initial calendar.Date
	// Today is highlighted and reachable with the "today" key.
	Today calendar.Date
	// Selected, when set, is shown as the current value of the host field.
	Selected *calendar.Date
	Style    calendar.Style
	Logger   *zap.Logger
}

// datePickedMsg is emitted when the user selects a day.
type datePickedMsg struct {
	Date calendar.Date
	Text string
}

// datePickerClosedMsg is emitted when the picker is cancelled.
type datePickerClosedMsg struct{}

// DatePicker is a month-view date picker. It owns one cursor for as long as
// it is open; every cursor change rebuilds the grid.
type DatePicker struct {
	title    string
	today    calendar.Date
	style    calendar.Style
	selected *calendar.Date

	cursor calendar.Cursor
	grid   calendar.Grid
	focus  int

	keys  pickerKeyMap
	help  help.Model
	log   *zap.Logger
	width int
}

func NewDatePicker(opts PickerOptions) (DatePicker, error) {
	cur, err := calendar.NewCursor(opts.Initial.Month, opts.Initial.Year)
	if err != nil {
		return DatePicker{}, err
	}
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	title := opts.Title
	if title == "" {
		title = "Select date"
	}
	p := DatePicker{
		title:    title,
		today:    opts.Today,
		style:    opts.Style,
		selected: opts.Selected,
		cursor:   cur,
		focus:    opts.Initial.Day,
		keys:     newPickerKeyMap(),
		help:     help.New(),
		log:      lg,
	}
	p.rebuild()
	return p, nil
}

func (p DatePicker) Cursor() calendar.Cursor { return p.cursor }

func (p DatePicker) Grid() calendar.Grid { return p.grid }

// Focused returns the day under the selection highlight.
func (p DatePicker) Focused() calendar.Date {
	return calendar.Date{Day: p.focus, Month: p.cursor.Month, Year: p.cursor.Year}
}

func (p *DatePicker) SetWidth(w int) { p.width = w }

func (p *DatePicker) rebuild() {
	g, err := p.cursor.Grid()
	if err != nil {
		// Cursors only come from NewCursor and its transitions.
		p.log.Error("rebuild grid", zap.Int("month", p.cursor.Month), zap.Int("year", p.cursor.Year), zap.Error(err))
		return
	}
	p.grid = g
	p.focus = clampDay(p.cursor, p.focus)
	p.log.Debug("picker cursor",
		zap.String("label", p.cursor.Label()),
		zap.Int("rows", len(g)),
		zap.Int("focus", p.focus),
	)
}

func (p *DatePicker) moveTo(c calendar.Cursor) {
	p.cursor = c
	p.rebuild()
}

// shiftDays moves the focus by delta days, rolling the cursor over month
// boundaries with the same rules as Next/Previous.
func (p *DatePicker) shiftDays(delta int) {
	d := p.focus + delta
	c := p.cursor
	for d < 1 {
		c = c.Previous()
		d += c.DaysInMonth()
	}
	for d > c.DaysInMonth() {
		d -= c.DaysInMonth()
		c = c.Next()
	}
	p.focus = d
	p.moveTo(c)
}

func (p DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if ws, ok := msg.(tea.WindowSizeMsg); ok {
			p.width = ws.Width
		}
		return p, nil
	}

	switch {
	case key.Matches(km, p.keys.PrevMonth):
		p.moveTo(p.cursor.Previous())
	case key.Matches(km, p.keys.NextMonth):
		p.moveTo(p.cursor.Next())
	case key.Matches(km, p.keys.Left):
		p.shiftDays(-1)
	case key.Matches(km, p.keys.Right):
		p.shiftDays(1)
	case key.Matches(km, p.keys.Up):
		p.shiftDays(-7)
	case key.Matches(km, p.keys.Down):
		p.shiftDays(7)
	case key.Matches(km, p.keys.Today):
		if !p.today.IsZero() {
			p.focus = p.today.Day
			p.moveTo(calendar.CursorFor(p.today))
		}
	case key.Matches(km, p.keys.Select):
		d := p.Focused()
		txt, err := d.Format(p.style)
		if err != nil {
			p.log.Error("format picked date", zap.Error(err))
			return p, nil
		}
		p.selected = &d
		p.log.Debug("date picked", zap.String("date", d.ISO()), zap.String("text", txt))
		return p, func() tea.Msg { return datePickedMsg{Date: d, Text: txt} }
	case key.Matches(km, p.keys.Cancel):
		return p, func() tea.Msg { return datePickerClosedMsg{} }
	}
	return p, nil
}

func clampDay(c calendar.Cursor, d int) int {
	if d < 1 {
		return 1
	}
	if n := c.DaysInMonth(); d > n {
		return n
	}
	return d
}
