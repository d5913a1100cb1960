package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"webapps-manager/internal/application/query/get_browsers"
	"webapps-manager/internal/domain/model"
)

var browsersAll bool

var browsersCmd = &cobra.Command{
	Use:   "browsers",
	Short: "List browsers usable for web apps",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		result, err := app.QueryBus.Dispatch(get_browsers.GetBrowsersQuery{IncludeUninstalled: browsersAll})
		if err != nil {
			return err
		}

		for _, summary := range result.([]model.BrowserSummary) {
			status := "installed"
			if !summary.Installed {
				status = "not installed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-15s %s\n", summary.DisplayName, status, summary.ID)
			for _, issue := range summary.Issues {
				fmt.Fprintf(cmd.OutOrStdout(), "  note: %s\n", strings.TrimSpace(issue))
			}
		}
		return nil
	},
}

func init() {
	browsersCmd.Flags().BoolVar(&browsersAll, "all", false, "include browsers that are not installed")
	rootCmd.AddCommand(browsersCmd)
}
