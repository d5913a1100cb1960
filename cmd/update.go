package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/application/command/update_webapps"
)

var updateCmd = &cobra.Command{
	Use:   "update [app-id]",
	Short: "Migrate web apps created by older versions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		update := update_webapps.UpdateWebAppsCommand{}
		if len(args) == 1 {
			update.AppID = args[0]
		}
		return app.CommandBus.Dispatch(update)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
