package cli

import (
	"staffdesk-cli/internal/config"

	"github.com/spf13/cobra"
)

type effectiveConfig struct {
	Today   string                           `json:"today"`
	Style   string                           `json:"style"`
	Screens map[string]config.ScreenDefaults `json:"screens"`
	Dir     string                           `json:"dir,omitempty"`
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := config.Dir()
			return writeOut(cmd, app, effectiveConfig{
				Today:   app.today().ISO(),
				Style:   app.cfg.Style,
				Screens: app.cfg.Screens,
				Dir:     dir,
			})
		},
	})

	return cmd
}
