package cli

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/calendar"
	"staffdesk-cli/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type exportResult struct {
	Path  string `json:"path"`
	Month string `json:"month"`
	Days  int    `json:"days"`
	Staff int    `json:"staff"`
}

func (r exportResult) Text() string {
	return fmt.Sprintf("wrote %s (%s, %d days, %d staff)", r.Path, r.Month, r.Days, r.Staff)
}

func splitStaff(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newExportCmd(app *App) *cobra.Command {
	var out, staff string

	cmd := &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Write a month attendance sheet (.xlsx)",
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
			if strings.TrimSpace(out) == "" {
				out = fmt.Sprintf("attendance-%04d-%02d.xlsx", cur.Year, cur.Month)
			}
			names := splitStaff(staff)

			wb, err := export.NewAttendanceWorkbook(cur, names)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer wb.Close()
			if err := wb.SaveAs(out); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Base.Info("attendance sheet written", zap.String("path", out), zap.String("month", cur.Label()))

			return writeOut(cmd, app, exportResult{
				Path:  out,
				Month: cur.Label(),
				Days:  cur.DaysInMonth(),
				Staff: len(names),
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default: attendance-YYYY-MM.xlsx)")
	cmd.Flags().StringVar(&staff, "staff", "", "Comma-separated staff names, one row each")

	return cmd
}
