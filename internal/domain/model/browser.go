package model

import (
	"fmt"
	"path/filepath"
	"sort"

	"webapps-manager/internal/appdirs"
	"webapps-manager/internal/config"
)

// NotInstalledID is the id shared by browsers whose definition matched no
// install probe. Uninstalled browsers live in their own list, so the id never
// collides with an installed one.
const NotInstalledID = "Not installed"

// Base is the rendering-engine family a browser belongs to. It drives the
// command-line and templating differences between browsers.
type Base int

const (
	BaseNone Base = iota
	BaseChromium
	BaseFirefox
)

// ParseBase maps the definition-file string onto a Base.
func ParseBase(s string) Base {
	switch s {
	case "chromium":
		return BaseChromium
	case "firefox":
		return BaseFirefox
	default:
		return BaseNone
	}
}

func (b Base) String() string {
	switch b {
	case BaseChromium:
		return "chromium"
	case BaseFirefox:
		return "firefox"
	default:
		return "none"
	}
}

// InstallKind describes how a browser is installed.
type InstallKind int

const (
	InstallNone InstallKind = iota
	InstallFlatpak
	InstallSystem
)

// Installation pairs an InstallKind with its reference: the flatpak package
// id or the system binary name.
type Installation struct {
	Kind InstallKind
	Ref  string
}

// BrowserDefinition is one browser definition file.
type BrowserDefinition struct {
	Name                  string   `yaml:"name"`
	Flatpak               string   `yaml:"flatpak"`
	SystemBin             string   `yaml:"system_bin"`
	CanIsolate            bool     `yaml:"can_isolate"`
	CanStartMaximized     bool     `yaml:"can_start_maximized"`
	DesktopFileNamePrefix string   `yaml:"desktop_file_name_prefix"`
	Base                  string   `yaml:"base"`
	Issues                []string `yaml:"issues"`
}

// InstalledBrowser binds a BrowserDefinition to a concrete installation
// state and its descriptor template.
type InstalledBrowser struct {
	Definition BrowserDefinition
	// ConfigName is the definition file stem; it also names the browser's
	// profile-config overlay directory.
	ConfigName string
	// Template is the raw descriptor template paired with the definition.
	Template     string
	Installation Installation
	// ID is stable within a registry snapshot: the flatpak id, the system
	// binary name, or NotInstalledID.
	ID   string
	Base Base
}

// NewInstalledBrowser derives the browser id from the installation state.
func NewInstalledBrowser(def BrowserDefinition, configName, template string, inst Installation) *InstalledBrowser {
	id := NotInstalledID
	if inst.Kind != InstallNone {
		id = inst.Ref
	}

	return &InstalledBrowser{
		Definition:   def,
		ConfigName:   configName,
		Template:     template,
		Installation: inst,
		ID:           id,
		Base:         ParseBase(def.Base),
	}
}

// NoBrowser is the sentinel appended to every installed-browser list so the
// UI always has a neutral choice. Its id is empty.
func NoBrowser() *InstalledBrowser {
	return &InstalledBrowser{
		Definition: BrowserDefinition{Name: "No browser"},
		Base:       BaseNone,
	}
}

func (b *InstalledBrowser) IsFlatpak() bool { return b.Installation.Kind == InstallFlatpak }

func (b *InstalledBrowser) IsSystem() bool { return b.Installation.Kind == InstallSystem }

func (b *InstalledBrowser) IsInstalled() bool { return b.Installation.Kind != InstallNone }

// DisplayName is the browser name qualified with its installation type, so
// a flatpak and a system install of the same browser stay distinguishable.
func (b *InstalledBrowser) DisplayName() string {
	switch b.Installation.Kind {
	case InstallFlatpak:
		return b.Definition.Name + " (Flatpak)"
	case InstallSystem:
		return b.Definition.Name + " (System)"
	default:
		return b.Definition.Name
	}
}

// RunCommand returns the command string that launches the browser.
func (b *InstalledBrowser) RunCommand() (string, error) {
	switch b.Installation.Kind {
	case InstallFlatpak:
		return "flatpak run " + b.Installation.Ref, nil
	case InstallSystem:
		return b.Installation.Ref, nil
	default:
		return "", fmt.Errorf("browser %q is not installed", b.Definition.Name)
	}
}

// IconNames returns candidate icon-theme names for the browser, sorted for
// stable output. The external renderer picks the first one its theme knows.
func (b *InstalledBrowser) IconNames() []string {
	seen := make(map[string]struct{}, 3)
	add := func(name string) {
		if name != "" {
			seen[name] = struct{}{}
		}
	}
	add(b.Definition.Flatpak)
	add(b.Definition.SystemBin)
	add(b.Definition.Name)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileRoot returns the directory under which this browser's isolated
// profiles live. Flatpak browsers keep profiles inside their own sandbox
// data area so the browser can reach them; system browsers use the
// application's data area.
func (b *InstalledBrowser) ProfileRoot(dirs *appdirs.AppDirs) (string, error) {
	if !b.Definition.CanIsolate {
		return "", fmt.Errorf("browser cannot isolate")
	}

	if b.Base == BaseNone {
		return "", fmt.Errorf("browser %q has no base family", b.Definition.Name)
	}

	switch b.Installation.Kind {
	case InstallFlatpak:
		return filepath.Join(dirs.UserFlatpak, b.ID, "data", config.AppNameHyphen, "profiles"), nil
	case InstallSystem:
		return dirs.AppDataProfiles, nil
	default:
		return "", fmt.Errorf("browser %q is not installed", b.Definition.Name)
	}
}

// BrowserSummary is the flattened view handed to external renderers.
type BrowserSummary struct {
	ID          string
	DisplayName string
	Installed   bool
	IconNames   []string
	Issues      []string
}

// Summary flattens the browser for display.
func (b *InstalledBrowser) Summary() BrowserSummary {
	return BrowserSummary{
		ID:          b.ID,
		DisplayName: b.DisplayName(),
		Installed:   b.IsInstalled(),
		IconNames:   b.IconNames(),
		Issues:      b.Definition.Issues,
	}
}
