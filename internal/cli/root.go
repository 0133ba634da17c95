package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"staffdesk-cli/internal/calendar"
	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/format"
	"staffdesk-cli/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Format     string
	PrettyJSON bool
	Today      string
	LogLevel   string
	ConfigPath string

	cfg *config.Config
	log *logging.Log
	// now is the wall clock; tests replace it.
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "staffdesk",
		Short:        "Date pickers and calendars for staff requests",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Print this month, Monday first
  staffdesk cal --format text

  # Three months before January 2025
  staffdesk cal 2025-01 --prev 3

  # Format a date the way the forms do
  staffdesk fmt 2025-05-05 --style slash

  # Pick a date interactively for the expense screen
  staffdesk pick --screen expense
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lg, err := logging.Init(app.LogLevel, os.Getenv("STAFFDESK_ENV"), "")
		if err != nil {
			return err
		}
		app.log = lg

		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		if app.Today != "" {
			if _, err := calendar.ParseDate(app.Today); err != nil {
				return writeErr(cmd, usageError{flag: "--today", err: err})
			}
		}
		app.log.Base.Debug("command start",
			zap.String("command", cmd.CommandPath()),
			zap.String("today", app.today().ISO()),
		)
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			app.log.Closer()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("STAFFDESK_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("STAFFDESK_TODAY", ""), "Treat this date as today (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("STAFFDESK_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default: ~/.staffdesk/config.{json,yaml})")

	cmd.AddCommand(newCalCmd(app))
	cmd.AddCommand(newFmtCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newLeaveCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// today resolves --today, then config "today", then the wall clock.
func (app *App) today() calendar.Date {
	if d, err := calendar.ParseDate(app.Today); err == nil {
		return d
	}
	now := time.Now
	if app.now != nil {
		now = app.now
	}
	if app.cfg == nil {
		return calendar.DateOf(now())
	}
	return app.cfg.TodayOr(now())
}

// tuiLogger keeps interactive programs off stderr: logs go to
// STAFFDESK_LOG_FILE when set and are dropped otherwise.
func (app *App) tuiLogger() (*logging.Log, error) {
	path := strings.TrimSpace(os.Getenv("STAFFDESK_LOG_FILE"))
	if path == "" {
		return logging.Nop(), nil
	}
	return logging.Init(app.LogLevel, os.Getenv("STAFFDESK_ENV"), path)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
