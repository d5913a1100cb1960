package reset_config

import (
	"io/fs"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/assets"
)

// ResetConfigCommandHandler handles ResetConfigCommand.
type ResetConfigCommandHandler struct {
	assetsFS fs.FS
	dirs     *appdirs.AppDirs
}

// NewResetConfigCommandHandler creates a new ResetConfigCommandHandler.
func NewResetConfigCommandHandler(assetsFS fs.FS, dirs *appdirs.AppDirs) *ResetConfigCommandHandler {
	return &ResetConfigCommandHandler{assetsFS: assetsFS, dirs: dirs}
}

// Handle resets the configuration tree to the shipped defaults.
func (h *ResetConfigCommandHandler) Handle(cmd ResetConfigCommand) error {
	return assets.Reset(h.assetsFS, h.dirs)
}
