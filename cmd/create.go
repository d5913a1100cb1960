package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/application/command/save_webapp"
)

var createFlags save_webapp.SaveWebAppCommand

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a web app launcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		return app.CommandBus.Dispatch(createFlags)
	},
}

func init() {
	createCmd.Flags().StringVar(&createFlags.AppName, "name", "", "display name of the web app")
	createCmd.Flags().StringVar(&createFlags.URL, "url", "", "website URL to open")
	createCmd.Flags().StringVar(&createFlags.BrowserID, "browser", "", "browser id (see the browsers command)")
	createCmd.Flags().StringVar(&createFlags.IconPath, "icon", "", "path to a local icon file")
	createCmd.Flags().BoolVar(&createFlags.Isolate, "isolate", false, "run in a dedicated browser profile")
	createCmd.Flags().BoolVar(&createFlags.Maximize, "maximize", false, "start the window maximized")
	createCmd.Flags().StringVar(&createFlags.Category, "category", "", "desktop menu category")
	createCmd.Flags().StringVar(&createFlags.Description, "comment", "", "launcher comment text")

	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("url")
	createCmd.MarkFlagRequired("browser")
	createCmd.MarkFlagRequired("icon")

	rootCmd.AddCommand(createCmd)
}
