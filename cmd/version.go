package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"webapps-manager/internal/config"
	"webapps-manager/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
