package cli

import (
	"errors"

	"staffdesk-cli/internal/calendar"
	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/tui"

	"github.com/spf13/cobra"
)

// screenDefaults resolves a screen's picker seed, applying --date/--style overrides.
func screenDefaults(app *App, screen, date, style string) (config.Resolved, error) {
	today := app.today()
	r, err := app.cfg.Screen(screen, today)
	if err != nil {
		return config.Resolved{}, err
	}
	if date != "" {
		d, err := calendar.ParseDate(date)
		if err != nil {
			return config.Resolved{}, usageError{flag: "--date", err: err}
		}
		r.Date = d
	}
	if style != "" {
		st, err := calendar.ParseStyle(style)
		if err != nil {
			return config.Resolved{}, usageError{flag: "--style", err: err}
		}
		r.Style = st
	}
	return r, nil
}

func newPickCmd(app *App) *cobra.Command {
	var screen, date, style string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date interactively and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := screenDefaults(app, screen, date, style)
			if err != nil {
				return writeErr(cmd, err)
			}
			lg, err := app.tuiLogger()
			if err != nil {
				return writeErr(cmd, err)
			}
			defer lg.Closer()

			res, err := tui.RunPicker(tui.PickerOptions{
				Title:   r.Title,
				Initial: r.Date,
				Today:   app.today(),
				Style:   r.Style,
				Logger:  lg.Base.Named("picker"),
			})
			if errors.Is(err, tui.ErrCancelled) {
				return writeErr(cmd, cancelledError{what: "date pick"})
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&screen, "screen", "attendance", "Screen whose defaults seed the picker")
	cmd.Flags().StringVar(&date, "date", "", "Open the picker on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&style, "style", "", "Display style (long|slash)")

	return cmd
}

func newLeaveCmd(app *App) *cobra.Command {
	var employee, date, style string

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Fill in a leave request form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := screenDefaults(app, "leave", date, style)
			if err != nil {
				return writeErr(cmd, err)
			}
			lg, err := app.tuiLogger()
			if err != nil {
				return writeErr(cmd, err)
			}
			defer lg.Closer()

			req, err := tui.RunLeaveForm(tui.LeaveFormOptions{
				Screen:   r,
				Today:    app.today(),
				Employee: employee,
				Logger:   lg.Base.Named("leave"),
			})
			if errors.Is(err, tui.ErrCancelled) {
				return writeErr(cmd, cancelledError{what: "leave request"})
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, req)
		},
	}

	cmd.Flags().StringVar(&employee, "employee", envOr("STAFFDESK_EMPLOYEE", ""), "Prefill the employee name")
	cmd.Flags().StringVar(&date, "date", "", "Open date pickers on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&style, "style", "", "Display style (long|slash)")

	return cmd
}
