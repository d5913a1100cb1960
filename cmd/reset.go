package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/application/command/reset_config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the shipped browser definitions and templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		return app.CommandBus.Dispatch(reset_config.ResetConfigCommand{})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
