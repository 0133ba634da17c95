package calendar

import (
	"strconv"
	"time"
)

// Cell is one grid position: a day of the month, or Blank.
type Cell int

// Blank marks a leading or trailing placeholder cell.
const Blank Cell = 0

func (c Cell) IsBlank() bool { return c == Blank }

// MarshalJSON encodes blanks as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsBlank() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// Row is one Monday-first week.
type Row [7]Cell

// Grid is the week rows covering one month.
type Grid []Row

// WeekdayLabels are the column headers, Monday first.
var WeekdayLabels = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year, month int) int {
	// Day 0 of next month is last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the Monday-first column (Monday=0 .. Sunday=6)
// of day 1 of month.
func FirstWeekdayOffset(year, month int) int {
	wd := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// BuildGrid lays out month/year as Monday-first week rows. The last row is
// padded with blanks; a month ending on Sunday gets no trailing blank row.
func BuildGrid(year, month int) (Grid, error) {
	if !validMonth(month) {
		return nil, invalidMonth(month)
	}
	lead := FirstWeekdayOffset(year, month)
	n := DaysInMonth(year, month)

	flat := make([]Cell, lead, lead+n)
	for d := 1; d <= n; d++ {
		flat = append(flat, Cell(d))
	}

	grid := make(Grid, 0, (len(flat)+6)/7)
	for start := 0; start < len(flat); start += 7 {
		var row Row
		copy(row[:], flat[start:min(start+7, len(flat))])
		grid = append(grid, row)
	}
	return grid, nil
}

// Flatten returns the grid's cells in row order.
func (g Grid) Flatten() []Cell {
	out := make([]Cell, 0, len(g)*7)
	for _, row := range g {
		out = append(out, row[:]...)
	}
	return out
}
