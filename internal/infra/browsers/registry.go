// Package browsers builds the registry of known browsers by pairing YAML
// definition files with their descriptor templates and probing the system for
// each candidate installation.
package browsers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/domain/model"
	"webapps-manager/pkg/log"
	"webapps-manager/pkg/probes"
)

// Registry is one snapshot of browser availability. It is rebuilt by Load;
// an instance is never mutated after that.
type Registry struct {
	installed   []*model.InstalledBrowser
	uninstalled []*model.InstalledBrowser

	// iconSearchPaths are extra icon-theme directories exported by installed
	// flatpak browsers. Only populated when running inside a flatpak sandbox,
	// where the host theme directories are not visible.
	iconSearchPaths []string
}

// Load reads every browser definition under dirs.BrowserDefinitions, pairs it
// with its template, and probes the installation state. A definition that
// fails to parse or has no template is skipped with a log line; one broken
// file must not take down the whole registry.
//
// A definition naming both a flatpak id and a system binary can produce two
// installed entries. Definitions matching no probe produce one uninstalled
// entry. The "No browser" sentinel is always appended to the installed list.
func Load(ctx context.Context, dirs *appdirs.AppDirs, prober probes.Prober) (*Registry, error) {
	entries, err := os.ReadDir(dirs.BrowserDefinitions)
	if err != nil {
		return nil, fmt.Errorf("failed to read browser definitions dir: %w", err)
	}

	registry := &Registry{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		configName := strings.TrimSuffix(entry.Name(), ext)
		definitionPath := filepath.Join(dirs.BrowserDefinitions, entry.Name())

		def, err := loadDefinition(definitionPath)
		if err != nil {
			log.Warn("skipping browser definition", "file", entry.Name(), "error", err)
			continue
		}

		template, err := loadTemplate(dirs.BrowserTemplates, configName)
		if err != nil {
			log.Warn("skipping browser without template", "file", entry.Name(), "error", err)
			continue
		}

		registry.add(ctx, def, configName, template, prober)
	}

	registry.installed = append(registry.installed, model.NoBrowser())
	registry.collectIconSearchPaths(ctx, prober)

	log.Info("browser registry loaded",
		"installed", len(registry.installed),
		"uninstalled", len(registry.uninstalled))
	return registry, nil
}

// add probes one definition and appends the resulting entries. Flatpak is
// probed before the system binary so flatpak installs list first.
func (r *Registry) add(ctx context.Context, def model.BrowserDefinition, configName, template string, prober probes.Prober) {
	found := false

	if def.Flatpak != "" && prober.FlatpakInstalled(ctx, def.Flatpak) {
		r.installed = append(r.installed, model.NewInstalledBrowser(def, configName, template,
			model.Installation{Kind: model.InstallFlatpak, Ref: def.Flatpak}))
		found = true
	}

	if def.SystemBin != "" && prober.BinaryOnPath(ctx, def.SystemBin) {
		r.installed = append(r.installed, model.NewInstalledBrowser(def, configName, template,
			model.Installation{Kind: model.InstallSystem, Ref: def.SystemBin}))
		found = true
	}

	if !found {
		r.uninstalled = append(r.uninstalled, model.NewInstalledBrowser(def, configName, template,
			model.Installation{Kind: model.InstallNone}))
	}
}

// All returns installed entries (sentinel included) followed by uninstalled
// ones.
func (r *Registry) All() []*model.InstalledBrowser {
	all := make([]*model.InstalledBrowser, 0, len(r.installed)+len(r.uninstalled))
	all = append(all, r.installed...)
	all = append(all, r.uninstalled...)
	return all
}

// Installed returns installed entries including the "No browser" sentinel.
func (r *Registry) Installed() []*model.InstalledBrowser { return r.installed }

// Uninstalled returns definitions that matched no probe.
func (r *Registry) Uninstalled() []*model.InstalledBrowser { return r.uninstalled }

// ByID finds an installed browser by its id. The sentinel's empty id is a
// valid key.
func (r *Registry) ByID(id string) (*model.InstalledBrowser, bool) {
	for _, browser := range r.installed {
		if browser.ID == id {
			return browser, true
		}
	}
	return nil, false
}

// ByIndex returns the installed browser at position i.
func (r *Registry) ByIndex(i int) (*model.InstalledBrowser, bool) {
	if i < 0 || i >= len(r.installed) {
		return nil, false
	}
	return r.installed[i], true
}

// Flatpak returns the installed flatpak entries.
func (r *Registry) Flatpak() []*model.InstalledBrowser {
	var out []*model.InstalledBrowser
	for _, browser := range r.installed {
		if browser.IsFlatpak() {
			out = append(out, browser)
		}
	}
	return out
}

// System returns the installed system-binary entries.
func (r *Registry) System() []*model.InstalledBrowser {
	var out []*model.InstalledBrowser
	for _, browser := range r.installed {
		if browser.IsSystem() {
			out = append(out, browser)
		}
	}
	return out
}

// IconSearchPaths returns the extra icon-theme directories discovered during
// Load. Callers decide what to do with them.
func (r *Registry) IconSearchPaths() []string { return r.iconSearchPaths }

// collectIconSearchPaths gathers the exported icon directories of installed
// flatpak browsers. Outside a sandbox the host theme already covers these, so
// the list stays empty.
func (r *Registry) collectIconSearchPaths(ctx context.Context, prober probes.Prober) {
	if !insideFlatpak() {
		return
	}

	for _, browser := range r.Flatpak() {
		location, err := prober.FlatpakLocation(ctx, browser.ID)
		if err != nil {
			log.Warn("could not resolve flatpak location", "browser", browser.ID, "error", err)
			continue
		}

		iconDir := filepath.Join(location, "export", "share", "icons")
		info, err := os.Stat(iconDir)
		if err != nil || !info.IsDir() {
			continue
		}
		r.iconSearchPaths = append(r.iconSearchPaths, iconDir)
	}
}

func insideFlatpak() bool {
	if os.Getenv("FLATPAK_ID") != "" {
		return true
	}
	_, err := os.Stat("/.flatpak-info")
	return err == nil
}

func loadDefinition(path string) (model.BrowserDefinition, error) {
	var def model.BrowserDefinition

	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read definition: %w", err)
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("failed to parse definition: %w", err)
	}
	if def.Name == "" {
		return def, fmt.Errorf("definition has no name")
	}
	return def, nil
}

func loadTemplate(templatesDir, configName string) (string, error) {
	path := filepath.Join(templatesDir, configName+".desktop")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("template %s is empty", path)
	}
	return string(data), nil
}
