// Package cmd implements the command line interface.
package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"webapps-manager/internal/application"
	"webapps-manager/internal/config"
	"webapps-manager/pkg/log"
)

var (
	assetsFS fs.FS
	cfg      *config.Config

	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   config.AppNameHyphen,
	Short: "Manage browser-bound launchers for web sites",
	Long: config.AppName + ` turns a website URL into a desktop launcher
bound to one of the browsers installed on the system. Launchers can run in
isolated browser profiles and are kept up to date across upgrades.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			userConfig, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("failed to resolve user config dir: %w", err)
			}
			path = filepath.Join(userConfig, config.AppNameHyphen, "config.json")
		}

		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		log.InitLog(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the CLI with the embedded asset tree. The context cancels
// in-flight work on shutdown.
func Execute(ctx context.Context, assets fs.FS) error {
	assetsFS = assets
	return rootCmd.ExecuteContext(ctx)
}

// newApp builds the fully wired application for one command invocation.
func newApp(cmd *cobra.Command) (*application.App, error) {
	return application.New(cmd.Context(), cfg, assetsFS)
}
