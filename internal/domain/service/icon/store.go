package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/config"
	"webapps-manager/pkg/files"
)

// Store copies a local icon file into the application's icon directory and
// returns the stored path. The file is named after the app id so deleting
// the web app can find it again.
func Store(dirs *appdirs.AppDirs, appID, srcPath string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat icon file %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("icon path %s is a directory", srcPath)
	}

	ext := filepath.Ext(srcPath)
	dstPath := filepath.Join(dirs.AppDataIcons, config.AppNameShort+"-"+appID+ext)

	if err := files.CopyFile(srcPath, dstPath); err != nil {
		return "", err
	}
	return dstPath, nil
}
