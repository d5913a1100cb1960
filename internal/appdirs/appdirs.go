// Package appdirs resolves and bootstraps every directory the application
// reads from or writes to.
package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"webapps-manager/internal/config"
	"webapps-manager/pkg/log"
)

// AppDirs holds the resolved filesystem layout.
type AppDirs struct {
	UserHome   string
	UserData   string
	UserConfig string

	// AppData / AppConfig are the application's own areas under the XDG roots.
	AppData   string
	AppConfig string

	// UserApplications is where generated .desktop descriptors land.
	UserApplications string

	// AppDataProfiles holds isolated browser profiles for system installs.
	AppDataProfiles string
	// AppDataIcons holds downloaded web app icons.
	AppDataIcons string

	// BrowserDefinitions holds the per-browser YAML definition files.
	BrowserDefinitions string
	// BrowserTemplates holds the per-browser descriptor templates, paired
	// 1:1 by filename stem with the definitions.
	BrowserTemplates string
	// ProfileOverlays holds the profile-config overlays copied into new
	// profiles (per config name, with chromium/firefox family defaults).
	ProfileOverlays string

	// UserFlatpak is ~/.var/app, the per-application sandbox data root.
	UserFlatpak string
}

// New resolves the standard user directories and creates the application's
// own directories beneath them.
func New() (*AppDirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user home: %w", err)
	}

	userConfig, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
	}

	userData := os.Getenv("XDG_DATA_HOME")
	if userData == "" {
		userData = filepath.Join(home, ".local", "share")
	}

	return NewWithRoots(home, userData, userConfig)
}

// NewWithRoots builds the layout beneath explicit root directories and
// ensures every directory the application owns exists.
func NewWithRoots(home, userData, userConfig string) (*AppDirs, error) {
	dirs := &AppDirs{
		UserHome:   home,
		UserData:   userData,
		UserConfig: userConfig,

		AppData:   filepath.Join(userData, config.AppNameHyphen),
		AppConfig: filepath.Join(userConfig, config.AppNameHyphen),

		UserApplications: filepath.Join(userData, "applications"),
		UserFlatpak:      filepath.Join(home, ".var", "app"),
	}

	dirs.AppDataProfiles = filepath.Join(dirs.AppData, "profiles")
	dirs.AppDataIcons = filepath.Join(dirs.AppData, "icons")
	dirs.BrowserDefinitions = filepath.Join(dirs.AppConfig, "browsers")
	dirs.BrowserTemplates = filepath.Join(dirs.AppConfig, "desktop-files")
	dirs.ProfileOverlays = filepath.Join(dirs.AppConfig, "profiles")

	owned := []string{
		dirs.UserApplications,
		dirs.AppDataProfiles,
		dirs.AppDataIcons,
		dirs.BrowserDefinitions,
		dirs.BrowserTemplates,
		dirs.ProfileOverlays,
	}
	for _, dir := range owned {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
	}

	return dirs, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	log.Debug("creating application directory", "path", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %s: %w", dir, err)
	}
	return nil
}
