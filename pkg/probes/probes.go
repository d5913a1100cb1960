// Package probes answers "is this browser installed?" questions by invoking
// external processes. Probes are idempotent status checks, so results are
// memoized for a short period to keep repeated registry loads cheap.
package probes

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"webapps-manager/pkg/log"
)

const (
	// DefaultTimeout bounds a single probe invocation. A hanging probe
	// would otherwise block registry load entirely.
	DefaultTimeout = 5 * time.Second
	// DefaultCacheTTL is how long probe results are reused.
	DefaultCacheTTL = 30 * time.Second
)

// Prober is the external-process interface the browser registry depends on.
type Prober interface {
	// FlatpakInstalled reports whether the flatpak package id is installed.
	FlatpakInstalled(ctx context.Context, id string) bool
	// BinaryOnPath reports whether an executable with the given name is on PATH.
	BinaryOnPath(ctx context.Context, name string) bool
	// FlatpakLocation returns the install location of a flatpak package.
	FlatpakLocation(ctx context.Context, id string) (string, error)
}

// CommandProber implements Prober with `flatpak` and `which` invocations.
type CommandProber struct {
	timeout time.Duration
	cache   *gocache.Cache
}

// NewCommandProber creates a prober with the given per-probe timeout and
// result cache TTL. Non-positive values fall back to the defaults.
func NewCommandProber(timeout, cacheTTL time.Duration) *CommandProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &CommandProber{
		timeout: timeout,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// FlatpakInstalled checks `flatpak info <id>`.
func (p *CommandProber) FlatpakInstalled(ctx context.Context, id string) bool {
	key := "flatpak:" + id
	if cached, ok := p.cache.Get(key); ok {
		return cached.(bool)
	}

	installed := p.run(ctx, "flatpak", "info", id) == nil
	p.cache.SetDefault(key, installed)
	return installed
}

// BinaryOnPath checks `which <name>`.
func (p *CommandProber) BinaryOnPath(ctx context.Context, name string) bool {
	key := "bin:" + name
	if cached, ok := p.cache.Get(key); ok {
		return cached.(bool)
	}

	found := p.run(ctx, "which", name) == nil
	p.cache.SetDefault(key, found)
	return found
}

// FlatpakLocation runs `flatpak info --show-location <id>` and returns the
// reported path.
func (p *CommandProber) FlatpakLocation(ctx context.Context, id string) (string, error) {
	key := "location:" + id
	if cached, ok := p.cache.Get(key); ok {
		return cached.(string), nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(probeCtx, "flatpak", "info", "--show-location", id)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to resolve install location for %s: %w (%s)",
			id, err, strings.TrimSpace(stderr.String()))
	}

	location := strings.TrimSpace(stdout.String())
	p.cache.SetDefault(key, location)
	return location, nil
}

func (p *CommandProber) run(ctx context.Context, name string, args ...string) error {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, name, args...)
	if err := cmd.Run(); err != nil {
		log.Debug("probe command failed", "command", name, "args", strings.Join(args, " "), "error", err)
		return err
	}
	return nil
}
