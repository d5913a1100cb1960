// Package assets extracts the browser definitions, descriptor templates and
// profile overlays compiled into the binary onto disk, where users can edit
// them.
package assets

import (
	"fmt"
	"io/fs"
	"os"

	"webapps-manager/internal/appdirs"
	"webapps-manager/pkg/embedded"
	"webapps-manager/pkg/log"
)

// Sync extracts the embedded configuration tree into the application config
// directory. Existing files are overwritten so edits to shipped files do not
// survive an upgrade; users add their own files instead.
func Sync(assetsFS fs.FS, dirs *appdirs.AppDirs) error {
	manager := embedded.NewManager(assetsFS, dirs.AppConfig)
	if err := manager.SyncFiles(); err != nil {
		return fmt.Errorf("failed to sync embedded assets: %w", err)
	}

	log.Debug("embedded assets synced", "target", dirs.AppConfig)
	return nil
}

// Reset deletes the whole application config directory and re-extracts the
// shipped defaults.
func Reset(assetsFS fs.FS, dirs *appdirs.AppDirs) error {
	if err := os.RemoveAll(dirs.AppConfig); err != nil {
		return fmt.Errorf("failed to remove config directory: %w", err)
	}

	log.Info("configuration reset to shipped defaults", "target", dirs.AppConfig)
	return Sync(assetsFS, dirs)
}
