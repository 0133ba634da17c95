package calendar

// Cursor is the (month, year) shown by an open picker. Month is always 1..12
// for cursors built with NewCursor; Next and Previous preserve that.
type Cursor struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func NewCursor(month, year int) (Cursor, error) {
	if !validMonth(month) {
		return Cursor{}, invalidMonth(month)
	}
	return Cursor{Month: month, Year: year}, nil
}

// CursorFor returns the cursor showing d.
func CursorFor(d Date) Cursor {
	return Cursor{Month: d.Month, Year: d.Year}
}

func (c Cursor) Next() Cursor {
	if c.Month == 12 {
		return Cursor{Month: 1, Year: c.Year + 1}
	}
	return Cursor{Month: c.Month + 1, Year: c.Year}
}

func (c Cursor) Previous() Cursor {
	if c.Month == 1 {
		return Cursor{Month: 12, Year: c.Year - 1}
	}
	return Cursor{Month: c.Month - 1, Year: c.Year}
}

// Step applies n transitions: Next for n > 0, Previous for n < 0. The result
// is computed on an absolute month index, so any n returns immediately.
func (c Cursor) Step(n int) Cursor {
	t := c.Year*12 + (c.Month - 1) + n
	year, month := t/12, t%12
	if month < 0 {
		year--
		month += 12
	}
	return Cursor{Month: month + 1, Year: year}
}

// Grid rebuilds the grid for the cursor's month.
func (c Cursor) Grid() (Grid, error) {
	return BuildGrid(c.Year, c.Month)
}

// DaysInMonth returns the length of the displayed month.
func (c Cursor) DaysInMonth() int {
	return DaysInMonth(c.Year, c.Month)
}

// Label renders the cursor as "May 2025".
func (c Cursor) Label() string {
	return MonthName(c.Month) + " " + itoa(c.Year)
}
