// Package icon coordinates asynchronous icon lookups. Lookups for a web app
// can be restarted while an earlier one is still running; the generation
// counter makes sure only the newest result is ever applied.
package icon

import "sync/atomic"

// Generation is a monotonic counter shared between a lookup starter and its
// completion callbacks. Starting a new lookup invalidates every older one.
type Generation struct {
	current atomic.Uint64
}

// Next starts a new generation and returns its token. All previously issued
// tokens become stale.
func (g *Generation) Next() uint64 {
	return g.current.Add(1)
}

// Current returns the newest token issued.
func (g *Generation) Current() uint64 {
	return g.current.Load()
}

// Apply runs fn only when token is still the newest generation. It reports
// whether fn ran.
func (g *Generation) Apply(token uint64, fn func()) bool {
	if g.current.Load() != token {
		return false
	}
	fn()
	return true
}
