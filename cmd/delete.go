package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/application/command/delete_webapp"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <app-id>",
	Short: "Delete a web app and its profile and icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		return app.CommandBus.Dispatch(delete_webapp.DeleteWebAppCommand{AppID: args[0]})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
