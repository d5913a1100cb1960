package files

import (
	"context"
	"os"
	"sync"
	"time"

	"webapps-manager/pkg/log"
)

// DirWatcher polls a directory and calls a callback when any entry inside it
// is added, removed or modified. Polling keeps the implementation free of
// platform-specific notification APIs; the watched directories change rarely.
type DirWatcher struct {
	dirPath  string
	lastScan map[string]time.Time
	interval time.Duration
	onChange func(string)
	stopCh   chan struct{}
	mu       sync.Mutex
	wg       sync.WaitGroup
}

// NewDirWatcher creates a watcher for dirPath. onChange receives the watched
// directory path on every detected change.
func NewDirWatcher(dirPath string, onChange func(string)) *DirWatcher {
	return &DirWatcher{
		dirPath:  dirPath,
		interval: 5 * time.Second,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins watching the directory for changes.
func (w *DirWatcher) Start(ctx context.Context) error {
	scan, err := w.scan()
	if err != nil {
		return log.Errorf("failed to scan directory %s: %v", w.dirPath, err)
	}
	w.lastScan = scan

	w.wg.Add(1)
	go w.watchLoop(ctx)
	log.Info("directory watcher started", "path", w.dirPath)
	return nil
}

// Stop stops watching the directory and waits for the loop to exit.
func (w *DirWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopCh:
		// Already stopped
		return
	default:
		close(w.stopCh)
	}

	w.wg.Wait()
}

func (w *DirWatcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			scan, err := w.scan()
			if err != nil {
				log.Warn("directory scan failed", "path", w.dirPath, "error", err)
				continue
			}
			if w.changed(scan) {
				w.lastScan = scan
				w.onChange(w.dirPath)
			}
		}
	}
}

// scan records the modification time of every regular entry in the directory.
func (w *DirWatcher) scan() (map[string]time.Time, error) {
	entries, err := os.ReadDir(w.dirPath)
	if err != nil {
		return nil, err
	}

	scan := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		scan[entry.Name()] = info.ModTime()
	}
	return scan, nil
}

func (w *DirWatcher) changed(scan map[string]time.Time) bool {
	if len(scan) != len(w.lastScan) {
		return true
	}
	for name, mod := range scan {
		last, ok := w.lastScan[name]
		if !ok || !last.Equal(mod) {
			return true
		}
	}
	return false
}
