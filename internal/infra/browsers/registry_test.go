package browsers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/domain/model"
)

type fakeProber struct {
	flatpaks  map[string]bool
	binaries  map[string]bool
	locations map[string]string
}

func (f *fakeProber) FlatpakInstalled(_ context.Context, id string) bool { return f.flatpaks[id] }

func (f *fakeProber) BinaryOnPath(_ context.Context, name string) bool { return f.binaries[name] }

func (f *fakeProber) FlatpakLocation(_ context.Context, id string) (string, error) {
	return f.locations[id], nil
}

func testDirs(t *testing.T) *appdirs.AppDirs {
	t.Helper()
	root := t.TempDir()
	dirs, err := appdirs.NewWithRoots(
		filepath.Join(root, "home"),
		filepath.Join(root, "data"),
		filepath.Join(root, "config"),
	)
	if err != nil {
		t.Fatalf("NewWithRoots() error = %v", err)
	}
	return dirs
}

func writeDefinition(t *testing.T, dirs *appdirs.AppDirs, stem, yamlText string) {
	t.Helper()
	path := filepath.Join(dirs.BrowserDefinitions, stem+".yml")
	if err := os.WriteFile(path, []byte(yamlText), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeTemplate(t *testing.T, dirs *appdirs.AppDirs, stem string) {
	t.Helper()
	path := filepath.Join(dirs.BrowserTemplates, stem+".desktop")
	text := "[Desktop Entry]\nName=%{name}\nExec=%{command} %{url}\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

const braveYAML = `name: Brave
flatpak: com.brave.Browser
system_bin: brave
can_isolate: true
can_start_maximized: true
desktop_file_name_prefix: brave
base: chromium
`

const firefoxYAML = `name: Firefox
flatpak: org.mozilla.firefox
system_bin: firefox
can_isolate: true
base: firefox
`

func TestLoadProbesInstallations(t *testing.T) {
	dirs := testDirs(t)
	writeDefinition(t, dirs, "brave", braveYAML)
	writeTemplate(t, dirs, "brave")
	writeDefinition(t, dirs, "firefox", firefoxYAML)
	writeTemplate(t, dirs, "firefox")

	prober := &fakeProber{
		// Brave installed both ways, Firefox not at all.
		flatpaks: map[string]bool{"com.brave.Browser": true},
		binaries: map[string]bool{"brave": true},
	}

	registry, err := Load(context.Background(), dirs, prober)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Two Brave entries plus the sentinel.
	if got := len(registry.Installed()); got != 3 {
		t.Fatalf("Installed() returned %d entries, want 3", got)
	}
	if got := len(registry.Uninstalled()); got != 1 {
		t.Fatalf("Uninstalled() returned %d entries, want 1", got)
	}

	flatpakBrave, ok := registry.ByID("com.brave.Browser")
	if !ok || !flatpakBrave.IsFlatpak() {
		t.Error("flatpak brave not found by id")
	}
	systemBrave, ok := registry.ByID("brave")
	if !ok || !systemBrave.IsSystem() {
		t.Error("system brave not found by id")
	}

	sentinel, ok := registry.ByID("")
	if !ok || sentinel.Definition.Name != "No browser" {
		t.Error("sentinel not reachable through empty id")
	}

	firefox := registry.Uninstalled()[0]
	if firefox.ID != model.NotInstalledID {
		t.Errorf("uninstalled browser id = %q, want %q", firefox.ID, model.NotInstalledID)
	}
}

func TestLoadSkipsBrokenDefinitions(t *testing.T) {
	dirs := testDirs(t)
	writeDefinition(t, dirs, "broken", "name: [unclosed\n")
	writeDefinition(t, dirs, "nameless", "system_bin: something\n")
	writeDefinition(t, dirs, "templateless", "name: Orphan\nsystem_bin: orphan\n")
	writeDefinition(t, dirs, "brave", braveYAML)
	writeTemplate(t, dirs, "brave")

	prober := &fakeProber{binaries: map[string]bool{"brave": true}}

	registry, err := Load(context.Background(), dirs, prober)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Only Brave survives: one system entry plus the sentinel.
	if got := len(registry.Installed()); got != 2 {
		t.Errorf("Installed() returned %d entries, want 2", got)
	}
	if got := len(registry.Uninstalled()); got != 0 {
		t.Errorf("Uninstalled() returned %d entries, want 0", got)
	}
}

func TestByIndex(t *testing.T) {
	dirs := testDirs(t)
	writeDefinition(t, dirs, "brave", braveYAML)
	writeTemplate(t, dirs, "brave")

	prober := &fakeProber{binaries: map[string]bool{"brave": true}}

	registry, err := Load(context.Background(), dirs, prober)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	first, ok := registry.ByIndex(0)
	if !ok || first.ID != "brave" {
		t.Errorf("ByIndex(0) = (%v, %v)", first, ok)
	}
	if _, ok := registry.ByIndex(5); ok {
		t.Error("ByIndex(5) should be out of range")
	}
	if _, ok := registry.ByIndex(-1); ok {
		t.Error("ByIndex(-1) should be out of range")
	}
}

func TestFlatpakAndSystemPartitions(t *testing.T) {
	dirs := testDirs(t)
	writeDefinition(t, dirs, "brave", braveYAML)
	writeTemplate(t, dirs, "brave")
	writeDefinition(t, dirs, "firefox", firefoxYAML)
	writeTemplate(t, dirs, "firefox")

	prober := &fakeProber{
		flatpaks: map[string]bool{"org.mozilla.firefox": true},
		binaries: map[string]bool{"brave": true},
	}

	registry, err := Load(context.Background(), dirs, prober)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := registry.Flatpak(); len(got) != 1 || got[0].ID != "org.mozilla.firefox" {
		t.Errorf("Flatpak() = %v", got)
	}
	if got := registry.System(); len(got) != 1 || got[0].ID != "brave" {
		t.Errorf("System() = %v", got)
	}
	if got := len(registry.All()); got != 3 {
		t.Errorf("All() returned %d entries, want 3", got)
	}
}
