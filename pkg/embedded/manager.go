// Package embedded extracts files compiled into the binary onto disk.
//
// The manager purposefully avoids any version tracking logic; callers control
// when the extraction happens. Existing files are overwritten so the
// extracted tree is always up to date with the binary.
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Manager handles embedded files operations.
type Manager struct {
	embeddedFS fs.FS
	targetDir  string
}

// NewManager creates a new embedded files manager.
func NewManager(embeddedFS fs.FS, targetDir string) *Manager {
	return &Manager{
		embeddedFS: embeddedFS,
		targetDir:  targetDir,
	}
}

// SyncFiles extracts the embedded files into the target directory,
// overwriting any existing files. If the directory does not yet exist it
// will be created.
func (m *Manager) SyncFiles() error {
	if err := m.extractFiles(); err != nil {
		return fmt.Errorf("failed to extract embedded files: %w", err)
	}
	return nil
}

func (m *Manager) extractFiles() error {
	if err := os.MkdirAll(m.targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	err := fs.WalkDir(m.embeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		targetPath := filepath.Join(m.targetDir, path)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}

		data, err := fs.ReadFile(m.embeddedFS, path)
		if err != nil {
			return fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return fmt.Errorf("failed to create parent directory for %s: %w", targetPath, err)
		}

		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to extract files: %w", err)
	}

	return nil
}
