// Package webapp implements the descriptor lifecycle: create, save, delete,
// update and path repair.
package webapp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/config"
	"webapps-manager/internal/domain/descriptor"
	"webapps-manager/internal/domain/model"
	"webapps-manager/internal/version"
	"webapps-manager/pkg/files"
	"webapps-manager/pkg/log"
	"webapps-manager/pkg/semver"
)

// Manager drives descriptor lifecycle operations against one directory
// layout and one browser registry snapshot.
type Manager struct {
	dirs     *appdirs.AppDirs
	browsers descriptor.BrowserLookup
	appsDir  string
}

// NewManager creates a lifecycle manager. An empty appsDir falls back to the
// user applications directory.
func NewManager(dirs *appdirs.AppDirs, browsers descriptor.BrowserLookup, appsDir string) *Manager {
	if appsDir == "" {
		appsDir = dirs.UserApplications
	}
	return &Manager{dirs: dirs, browsers: browsers, appsDir: appsDir}
}

// AppsDir returns the directory descriptors are saved to.
func (m *Manager) AppsDir() string { return m.appsDir }

// Create returns a blank document with a fresh app id that does not collide
// with any descriptor already saved.
func (m *Manager) Create() (*descriptor.Document, error) {
	return descriptor.New(m.appsDir)
}

// SavePath is the canonical descriptor filename for a resolved record:
// browser prefix, application marker and app id joined by hyphens.
func (m *Manager) SavePath(record *model.WebAppRecord) string {
	prefix := record.Browser.Definition.DesktopFileNamePrefix
	if prefix == "" {
		prefix = record.Browser.ConfigName
	}
	name := prefix + "-" + config.AppNameShort + "-" + record.AppID + ".desktop"
	return filepath.Join(m.appsDir, name)
}

// Save validates the document, renders it through its browser template and
// writes the result. The previous descriptor file is removed first when the
// canonical filename changed, so a browser switch does not leave the old
// launcher behind. Symlinked descriptors are left in place.
func (m *Manager) Save(doc *descriptor.Document) (*descriptor.Document, error) {
	opID := uuid.NewString()

	record, err := descriptor.Resolve(doc, m.browsers)
	if err != nil {
		return nil, err
	}

	savePath := m.SavePath(record)

	rendered, err := descriptor.Render(record, savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to render descriptor: %w", err)
	}

	if old := doc.Path(); old != "" && old != savePath {
		if err := removeRegularFile(old); err != nil {
			return nil, fmt.Errorf("failed to remove previous descriptor: %w", err)
		}
	}

	if err := os.WriteFile(savePath, []byte(rendered.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write descriptor %s: %w", savePath, err)
	}

	log.Info("descriptor saved", "op", opID, "app_id", record.AppID, "path", savePath)
	return rendered, nil
}

// Delete removes the descriptor file, its icon and its isolated profile.
// Each removal is attempted independently and failures are aggregated, so a
// missing icon does not leave a profile behind.
func (m *Manager) Delete(doc *descriptor.Document) error {
	opID := uuid.NewString()
	var errs []error

	if path := doc.Path(); path != "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove descriptor: %w", err))
		}
	}

	if iconPath, ok := doc.GetIconPath(); ok {
		if err := os.Remove(iconPath); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove icon: %w", err))
		}
	}

	if isolate, ok := doc.GetIsolated(); ok && isolate {
		if profilePath, ok := doc.GetProfilePath(); ok {
			if err := os.RemoveAll(profilePath); err != nil {
				errs = append(errs, fmt.Errorf("failed to remove profile: %w", err))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	id, _ := doc.GetID()
	log.Info("descriptor deleted", "op", opID, "app_id", id)
	return nil
}

// Update migrates a descriptor written by an older application version:
// the profile overlay is re-applied for isolated apps, the stored version is
// bumped and the descriptor is re-rendered and saved. It reports whether a
// migration happened; descriptors already at the current version are left
// untouched.
func (m *Manager) Update(doc *descriptor.Document) (bool, error) {
	opID := uuid.NewString()

	rawVersion, ok := doc.GetVersion()
	if !ok {
		return false, &descriptor.ValidationError{Field: descriptor.FieldVersion, Message: descriptor.MsgMissing}
	}
	stored, err := semver.Parse(rawVersion)
	if err != nil {
		return false, &descriptor.ValidationError{Field: descriptor.FieldVersion, Message: descriptor.MsgInvalid}
	}

	current, err := semver.Parse(version.GetVersion())
	if err != nil {
		return false, fmt.Errorf("failed to parse application version: %w", err)
	}

	if semver.Compare(stored, current) >= 0 {
		return false, nil
	}

	record, err := descriptor.Resolve(doc, m.browsers)
	if err != nil {
		return false, err
	}

	// Newer overlay files may carry fixes the existing profile needs.
	if record.Isolate && record.ProfilePath != "" {
		if err := m.copyProfileOverlay(record.Browser, record.ProfilePath); err != nil {
			return false, fmt.Errorf("failed to refresh profile overlay: %w", err)
		}
	}

	doc.SetVersion(version.GetVersion())
	if _, err := m.Save(doc); err != nil {
		return false, err
	}

	log.Info("descriptor migrated", "op", opID, "app_id", record.AppID,
		"from", rawVersion, "to", version.GetVersion())
	return true, nil
}

// BuildProfilePath creates the isolated profile directory for the document,
// seeds it from the profile-config overlay and records the path on the
// document.
func (m *Manager) BuildProfilePath(doc *descriptor.Document) (string, error) {
	isolate, ok := doc.GetIsolated()
	if !ok || !isolate {
		return "", fmt.Errorf("Isolate is not set")
	}

	browserID, ok := doc.GetBrowserID()
	if !ok {
		return "", &descriptor.ValidationError{Field: descriptor.FieldBrowser, Message: descriptor.MsgMissing}
	}
	browser, ok := m.browsers.ByID(browserID)
	if !ok {
		return "", &descriptor.ValidationError{Field: descriptor.FieldBrowser, Message: descriptor.MsgMissing}
	}
	if !browser.Definition.CanIsolate {
		return "", fmt.Errorf("Browser cannot isolate")
	}

	appID, ok := doc.GetID()
	if !ok {
		return "", &descriptor.ValidationError{Field: descriptor.FieldID, Message: descriptor.MsgMissing}
	}

	root, err := browser.ProfileRoot(m.dirs)
	if err != nil {
		return "", err
	}

	profilePath := filepath.Join(root, appID)
	if err := os.MkdirAll(profilePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create profile directory %s: %w", profilePath, err)
	}

	if err := m.copyProfileOverlay(browser, profilePath); err != nil {
		return "", err
	}

	doc.SetProfilePath(profilePath)
	return profilePath, nil
}

// CheckPaths repairs what it can and only reports the rest. A vanished
// profile is rebuilt; a vanished icon is logged because re-fetching it needs
// user interaction.
func (m *Manager) CheckPaths(doc *descriptor.Document) {
	id, _ := doc.GetID()

	if isolate, ok := doc.GetIsolated(); ok && isolate {
		profilePath, ok := doc.GetProfilePath()
		if !ok || !dirExists(profilePath) {
			if _, err := m.BuildProfilePath(doc); err != nil {
				log.Warn("could not rebuild profile", "app_id", id, "error", err)
			} else {
				log.Info("profile rebuilt", "app_id", id)
			}
		}
	}

	if iconPath, ok := doc.GetIconPath(); ok {
		if _, err := os.Stat(iconPath); err != nil {
			log.Warn("icon file is missing", "app_id", id, "path", iconPath)
		}
	}
}

// copyProfileOverlay seeds a profile directory from the browser's overlay:
// the per-browser directory when one exists, otherwise the base-family
// default. No overlay at all is fine.
func (m *Manager) copyProfileOverlay(browser *model.InstalledBrowser, profilePath string) error {
	overlay := filepath.Join(m.dirs.ProfileOverlays, browser.ConfigName)
	if !dirExists(overlay) {
		overlay = filepath.Join(m.dirs.ProfileOverlays, browser.Base.String())
	}
	if !dirExists(overlay) {
		log.Debug("no profile overlay for browser", "browser", browser.ConfigName)
		return nil
	}

	if err := files.CopyDirectory(overlay, profilePath); err != nil {
		return fmt.Errorf("failed to copy profile overlay: %w", err)
	}
	return nil
}

// removeRegularFile removes path unless it is a symlink or already gone.
func removeRegularFile(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		log.Debug("leaving symlinked descriptor in place", "path", path)
		return nil
	}
	return os.Remove(path)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
