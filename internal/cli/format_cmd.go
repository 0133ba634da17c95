package cli

import (
	"staffdesk-cli/internal/calendar"

	"github.com/spf13/cobra"
)

type formattedDate struct {
	Date      string         `json:"date"`
	Style     calendar.Style `json:"style"`
	Formatted string         `json:"text"`
}

func (f formattedDate) Text() string { return f.Formatted }

func newFmtCmd(app *App) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "fmt <YYYY-MM-DD>",
		Short: "Format a date the way the request forms display it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if style == "" {
				style = app.cfg.Style
			}
			st, err := calendar.ParseStyle(style)
			if err != nil {
				return writeErr(cmd, usageError{flag: "--style", err: err})
			}
			txt, err := d.Format(st)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, formattedDate{Date: d.ISO(), Style: st, Formatted: txt})
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Display style (long|slash; default from config)")

	return cmd
}
