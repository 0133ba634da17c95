package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"staffdesk-cli/internal/calendar"
)

const (
	attendanceSheet = "Attendance"
	calendarSheet   = "Calendar"
)

// AttendanceWorkbook is a month attendance sheet: one column per day and
// one row per staff member, plus a Monday-first calendar sheet.
type AttendanceWorkbook struct {
	File *excelize.File
}

// dayColumn is one day of the month with its Monday-first weekday index.
type dayColumn struct {
	day     int
	weekday int
}

func monthColumns(g calendar.Grid) []dayColumn {
	var out []dayColumn
	for _, row := range g {
		for col, c := range row {
			if !c.IsBlank() {
				out = append(out, dayColumn{day: int(c), weekday: col})
			}
		}
	}
	return out
}

func cellName(col, row int) string {
	// Coordinates are always positive here, so the error is impossible.
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func NewAttendanceWorkbook(cur calendar.Cursor, staff []string) (*AttendanceWorkbook, error) {
	grid, err := cur.Grid()
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(calendarSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("bold style: %w", err)
	}
	weekend, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EDEDED"}},
	})
	if err != nil {
		return nil, fmt.Errorf("weekend style: %w", err)
	}

	if err := writeAttendance(f, cur, grid, staff, bold, weekend); err != nil {
		return nil, err
	}
	if err := writeCalendar(f, cur, grid, bold); err != nil {
		return nil, err
	}
	return &AttendanceWorkbook{File: f}, nil
}

func writeAttendance(f *excelize.File, cur calendar.Cursor, grid calendar.Grid, staff []string, bold, weekend int) error {
	sh := attendanceSheet
	if err := f.SetCellStr(sh, "A1", "Attendance "+cur.Label()); err != nil {
		return err
	}
	if err := f.SetCellStr(sh, "A2", "Staff"); err != nil {
		return err
	}
	days := monthColumns(grid)
	for i, dc := range days {
		col := i + 2
		if err := f.SetCellInt(sh, cellName(col, 2), int(dc.day)); err != nil {
			return err
		}
		if err := f.SetCellStr(sh, cellName(col, 3), calendar.WeekdayLabels[dc.weekday]); err != nil {
			return err
		}
		st := bold
		if dc.weekday >= 5 {
			st = weekend
		}
		if err := f.SetCellStyle(sh, cellName(col, 2), cellName(col, 3), st); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sh, "A1", "A2", bold); err != nil {
		return err
	}
	for r, name := range staff {
		if err := f.SetCellStr(sh, cellName(1, r+4), name); err != nil {
			return err
		}
	}
	last := excelizeColumn(len(days) + 1)
	if err := f.SetColWidth(sh, "B", last, 4); err != nil {
		return err
	}
	w := 12.0
	for _, name := range staff {
		if l := float64(len(name)) * 1.1; l > w {
			w = min(l, 40)
		}
	}
	if err := f.SetColWidth(sh, "A", "A", w); err != nil {
		return err
	}
	return f.SetPanes(sh, &excelize.Panes{Freeze: true, XSplit: 1, YSplit: 3, TopLeftCell: "B4", ActivePane: "bottomRight"})
}

func writeCalendar(f *excelize.File, cur calendar.Cursor, grid calendar.Grid, bold int) error {
	sh := calendarSheet
	if err := f.SetCellStr(sh, "A1", cur.Label()); err != nil {
		return err
	}
	for i, l := range calendar.WeekdayLabels {
		if err := f.SetCellStr(sh, cellName(i+1, 2), l); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sh, "A1", "G2", bold); err != nil {
		return err
	}
	for r, row := range grid {
		for c, cell := range row {
			if cell.IsBlank() {
				continue
			}
			if err := f.SetCellInt(sh, cellName(c+1, r+3), int(cell)); err != nil {
				return err
			}
		}
	}
	return nil
}

func excelizeColumn(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "A"
	}
	return name
}

func (w *AttendanceWorkbook) SaveAs(path string) error {
	if err := w.File.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (w *AttendanceWorkbook) Close() error { return w.File.Close() }
