package cmd

import (
	"github.com/spf13/cobra"

	"webapps-manager/internal/infra/browsers"
	"webapps-manager/pkg/files"
	"webapps-manager/pkg/log"
	"webapps-manager/pkg/probes"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch browser definitions and reload the registry on changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		ctx := cmd.Context()
		prober := probes.NewCommandProber(0, 0)

		reload := func(dir string) {
			log.Info("configuration changed, reloading registry", "dir", dir)
			registry, err := browsers.Load(ctx, app.Dirs, prober)
			if err != nil {
				log.Error("registry reload failed", "error", err)
				return
			}
			log.Info("registry reloaded",
				"installed", len(registry.Installed()),
				"uninstalled", len(registry.Uninstalled()))
		}

		watched := []string{app.Dirs.BrowserDefinitions, app.Dirs.BrowserTemplates}
		for _, dir := range watched {
			watcher := files.NewDirWatcher(dir, reload)
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()
		}

		<-ctx.Done()
		log.Info("watch stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
