package webapp

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"webapps-manager/internal/domain/descriptor"
	"webapps-manager/pkg/log"
)

// ListOwned loads every descriptor in the applications directory that carries
// the ownership marker. Foreign .desktop files and unreadable descriptors are
// skipped.
func (m *Manager) ListOwned() ([]*descriptor.Document, error) {
	entries, err := os.ReadDir(m.appsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications dir: %w", err)
	}

	var docs []*descriptor.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
			continue
		}

		path := filepath.Join(m.appsDir, entry.Name())
		doc, err := descriptor.FromPath(path)
		if err != nil {
			log.Debug("skipping unreadable descriptor", "path", path, "error", err)
			continue
		}
		if !doc.GetOwned() {
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		iName, _ := docs[i].GetName()
		jName, _ := docs[j].GetName()
		return iName < jName
	})
	return docs, nil
}

// FindByAppID loads the owned descriptor with the given app id.
func (m *Manager) FindByAppID(appID string) (*descriptor.Document, error) {
	docs, err := m.ListOwned()
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if id, _ := doc.GetID(); id == appID {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("no web app with id %q", appID)
}
