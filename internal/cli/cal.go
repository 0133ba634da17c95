package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"staffdesk-cli/internal/calendar"

	"github.com/spf13/cobra"
)

var reYearMonth = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})$`)

// parseYearMonth parses YYYY-MM into a cursor.
func parseYearMonth(s string) (calendar.Cursor, error) {
	m := reYearMonth.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return calendar.Cursor{}, fmt.Errorf("%w: month %q (expected YYYY-MM)", calendar.ErrInvalidArgument, s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	return calendar.NewCursor(mo, y)
}

// monthGrid is the output payload of `cal`.
type monthGrid struct {
	Month    int           `json:"month"`
	Year     int           `json:"year"`
	Label    string        `json:"label"`
	Weekdays []string      `json:"weekdays"`
	Rows     calendar.Grid `json:"rows"`
}

func newMonthGrid(cur calendar.Cursor) (monthGrid, error) {
	g, err := cur.Grid()
	if err != nil {
		return monthGrid{}, err
	}
	return monthGrid{
		Month:    cur.Month,
		Year:     cur.Year,
		Label:    cur.Label(),
		Weekdays: calendar.WeekdayLabels[:],
		Rows:     g,
	}, nil
}

// Text renders the grid like cal(1), Monday first.
func (g monthGrid) Text() string {
	var b strings.Builder
	const w = 20
	if pad := (w - len(g.Label)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(g.Label)
	b.WriteString("\n")
	b.WriteString(strings.Join(g.Weekdays, " "))
	b.WriteString("\n")
	for _, row := range g.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			if c.IsBlank() {
				cells[i] = "  "
			} else {
				cells[i] = fmt.Sprintf("%2d", int(c))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func newCalCmd(app *App) *cobra.Command {
	var next, prev int

	cmd := &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Print a Monday-first month grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur := calendar.CursorFor(app.today())
			if len(args) == 1 {
				c, err := parseYearMonth(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				cur = c
			}
			if next < 0 || prev < 0 {
				return writeErr(cmd, usageError{flag: "--next/--prev", err: fmt.Errorf("%w: must not be negative", calendar.ErrInvalidArgument)})
			}
			cur = cur.Step(next - prev)

			g, err := newMonthGrid(cur)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, g)
		},
	}

	cmd.Flags().IntVar(&next, "next", 0, "Move forward N months before printing")
	cmd.Flags().IntVar(&prev, "prev", 0, "Move back N months before printing")

	return cmd
}
