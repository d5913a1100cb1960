package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"webapps-manager/internal/application/query/get_webapps"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List managed web apps",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		result, err := app.QueryBus.Dispatch(get_webapps.GetWebAppsQuery{})
		if err != nil {
			return err
		}

		infos := result.([]get_webapps.WebAppInfo)
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no web apps")
			return nil
		}

		for _, info := range infos {
			flags := ""
			if info.Isolated {
				flags += " isolated"
			}
			if info.Maximized {
				flags += " maximized"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-25s %-40s %s%s\n",
				info.AppID, info.Name, info.URL, info.BrowserID, flags)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
