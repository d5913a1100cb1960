package descriptor

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"webapps-manager/internal/infra/freedesktop"
	"webapps-manager/internal/version"
	"webapps-manager/pkg/log"
)

const (
	appIDLength      = 8
	appIDAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	appIDMaxAttempts = 100
)

// Document is the in-memory model of one descriptor file: an ordered
// key/value store plus the filesystem path it belongs to. Setters only
// mutate memory; nothing is persisted until the lifecycle manager saves.
type Document struct {
	entry *freedesktop.Entry
	path  string
}

// New creates a blank document with a fresh random app id and the current
// application version stamped. The id is checked against descriptors already
// present in appsDir so two web apps never share one.
func New(appsDir string) (*Document, error) {
	id, err := generateAppID(appsDir)
	if err != nil {
		return nil, err
	}

	entry := freedesktop.NewEntry()
	entry.Set(string(FieldID), id)
	entry.Set(string(FieldVersion), version.GetVersion())

	return &Document{entry: entry}, nil
}

// FromPath loads a document from an existing descriptor file.
func FromPath(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}

	entry, err := freedesktop.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}

	return &Document{entry: entry, path: path}, nil
}

// FromString parses descriptor text that will be saved at path.
func FromString(path, text string) (*Document, error) {
	entry, err := freedesktop.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor text: %w", err)
	}
	return &Document{entry: entry, path: path}, nil
}

// IsOwned reports whether the descriptor file at path carries the ownership
// marker.
func IsOwned(path string) bool {
	doc, err := FromPath(path)
	if err != nil {
		return false
	}
	return doc.GetOwned()
}

func (d *Document) Path() string { return d.path }

func (d *Document) SetPath(path string) {
	d.path = path
	log.Debug("set descriptor path", "path", path)
}

// String renders the document to descriptor text.
func (d *Document) String() string { return d.entry.String() }

func (d *Document) get(field Field) (string, bool) {
	value, ok := d.entry.Get(string(field))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (d *Document) getBool(field Field) (bool, bool) {
	raw, ok := d.get(field)
	if !ok {
		return false, false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}

func (d *Document) set(field Field, value string) {
	d.entry.Set(string(field), value)
	log.Debug("set descriptor field", "field", string(field), "value", value)
}

func (d *Document) GetOwned() bool {
	owned, ok := d.getBool(FieldOwned)
	return ok && owned
}

func (d *Document) SetOwned() { d.set(FieldOwned, "true") }

func (d *Document) GetName() (string, bool) { return d.get(FieldName) }

func (d *Document) SetName(name string) { d.set(FieldName, name) }

func (d *Document) GetID() (string, bool) { return d.get(FieldID) }

func (d *Document) SetID(id string) { d.set(FieldID, id) }

func (d *Document) GetVersion() (string, bool) { return d.get(FieldVersion) }

func (d *Document) SetVersion(v string) { d.set(FieldVersion, v) }

// GetExec is read-only: the Exec line is always produced by the browser
// template, never set directly.
func (d *Document) GetExec() (string, bool) { return d.get(FieldExec) }

func (d *Document) GetURL() (string, bool) { return d.get(FieldURL) }

func (d *Document) SetURL(url string) { d.set(FieldURL, url) }

func (d *Document) GetBrowserID() (string, bool) { return d.get(FieldBrowser) }

func (d *Document) SetBrowserID(id string) { d.set(FieldBrowser, id) }

func (d *Document) GetIsolated() (bool, bool) { return d.getBool(FieldIsolated) }

func (d *Document) SetIsolated(isolated bool) { d.set(FieldIsolated, strconv.FormatBool(isolated)) }

func (d *Document) GetMaximized() (bool, bool) { return d.getBool(FieldMaximized) }

func (d *Document) SetMaximized(maximized bool) { d.set(FieldMaximized, strconv.FormatBool(maximized)) }

func (d *Document) GetIconPath() (string, bool) { return d.get(FieldIcon) }

func (d *Document) SetIconPath(path string) { d.set(FieldIcon, path) }

func (d *Document) GetProfilePath() (string, bool) { return d.get(FieldProfile) }

func (d *Document) SetProfilePath(path string) { d.set(FieldProfile, path) }

func (d *Document) GetCategory() (string, bool) { return d.get(FieldCategories) }

func (d *Document) SetCategory(category string) { d.set(FieldCategories, category) }

func (d *Document) GetDescription() (string, bool) { return d.get(FieldComment) }

func (d *Document) SetDescription(description string) { d.set(FieldComment, description) }

// generateAppID draws random ids until one does not collide with any
// descriptor already in appsDir.
func generateAppID(appsDir string) (string, error) {
	for attempt := 0; attempt < appIDMaxAttempts; attempt++ {
		id := randomID(appIDLength)

		if appsDir == "" {
			return id, nil
		}

		matches, err := filepath.Glob(filepath.Join(appsDir, "*-"+id+".desktop"))
		if err != nil {
			return "", fmt.Errorf("failed to check app id collisions: %w", err)
		}
		if len(matches) == 0 {
			return id, nil
		}

		log.Warn("app id collision, regenerating", "id", id)
	}

	return "", fmt.Errorf("could not generate a unique app id after %d attempts", appIDMaxAttempts)
}

func randomID(length int) string {
	id := make([]byte, length)
	for i := range id {
		id[i] = appIDAlphabet[rand.IntN(len(appIDAlphabet))]
	}
	return string(id)
}
