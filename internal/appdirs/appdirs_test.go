package appdirs

import (
	"os"
	"path/filepath"
	"testing"

	"webapps-manager/internal/config"
)

func TestNewWithRootsLayout(t *testing.T) {
	root := t.TempDir()
	home := filepath.Join(root, "home")
	data := filepath.Join(root, "data")
	conf := filepath.Join(root, "config")

	dirs, err := NewWithRoots(home, data, conf)
	if err != nil {
		t.Fatalf("NewWithRoots() error = %v", err)
	}

	want := map[string]string{
		"AppData":            filepath.Join(data, config.AppNameHyphen),
		"AppConfig":          filepath.Join(conf, config.AppNameHyphen),
		"UserApplications":   filepath.Join(data, "applications"),
		"UserFlatpak":        filepath.Join(home, ".var", "app"),
		"BrowserDefinitions": filepath.Join(conf, config.AppNameHyphen, "browsers"),
		"BrowserTemplates":   filepath.Join(conf, config.AppNameHyphen, "desktop-files"),
		"ProfileOverlays":    filepath.Join(conf, config.AppNameHyphen, "profiles"),
	}
	got := map[string]string{
		"AppData":            dirs.AppData,
		"AppConfig":          dirs.AppConfig,
		"UserApplications":   dirs.UserApplications,
		"UserFlatpak":        dirs.UserFlatpak,
		"BrowserDefinitions": dirs.BrowserDefinitions,
		"BrowserTemplates":   dirs.BrowserTemplates,
		"ProfileOverlays":    dirs.ProfileOverlays,
	}
	for name, wantPath := range want {
		if got[name] != wantPath {
			t.Errorf("%s = %q, want %q", name, got[name], wantPath)
		}
	}
}

func TestNewWithRootsCreatesOwnedDirs(t *testing.T) {
	root := t.TempDir()
	dirs, err := NewWithRoots(
		filepath.Join(root, "home"),
		filepath.Join(root, "data"),
		filepath.Join(root, "config"),
	)
	if err != nil {
		t.Fatalf("NewWithRoots() error = %v", err)
	}

	for _, dir := range []string{
		dirs.UserApplications,
		dirs.AppDataProfiles,
		dirs.AppDataIcons,
		dirs.BrowserDefinitions,
		dirs.BrowserTemplates,
		dirs.ProfileOverlays,
	} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("owned directory %s was not created", dir)
		}
	}

	// The flatpak root belongs to the system, not to us.
	if _, err := os.Stat(dirs.UserFlatpak); !os.IsNotExist(err) {
		t.Error("UserFlatpak must not be created")
	}
}
