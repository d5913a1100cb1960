package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/application/command/repair_webapps"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Recreate missing profiles and report missing icons",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		return app.CommandBus.Dispatch(repair_webapps.RepairWebAppsCommand{})
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
