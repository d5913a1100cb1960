// Package freedesktop implements the flat key/value text format used by
// desktop entry files: one group header followed by key=value lines.
//
// The codec preserves line order, unknown keys, comments and blank lines so
// a parsed file serializes back byte-for-byte when nothing was changed.
package freedesktop

import (
	"fmt"
	"strings"
)

// GroupHeader is the single group every descriptor carries.
const GroupHeader = "[Desktop Entry]"

type line struct {
	// raw holds the verbatim line for headers, comments and blanks.
	raw   string
	key   string
	value string
	isKV  bool
}

// Entry is an ordered key/value document.
type Entry struct {
	lines []line
}

// NewEntry creates an empty entry containing only the group header.
func NewEntry() *Entry {
	return &Entry{lines: []line{{raw: GroupHeader}}}
}

// Parse decodes descriptor text. Unknown keys are kept verbatim; the only
// hard requirement is the presence of the group header.
func Parse(text string) (*Entry, error) {
	entry := &Entry{}
	hasHeader := false

	for _, rawLine := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		rawLine = strings.TrimRight(rawLine, "\r")
		trimmed := strings.TrimSpace(rawLine)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "["):
			if trimmed == GroupHeader {
				hasHeader = true
			}
			entry.lines = append(entry.lines, line{raw: rawLine})
		case strings.Contains(rawLine, "="):
			key, value, _ := strings.Cut(rawLine, "=")
			entry.lines = append(entry.lines, line{
				key:   strings.TrimSpace(key),
				value: value,
				isKV:  true,
			})
		default:
			entry.lines = append(entry.lines, line{raw: rawLine})
		}
	}

	if !hasHeader {
		return nil, fmt.Errorf("missing %s group header", GroupHeader)
	}

	return entry, nil
}

// Get returns the value for key and whether the key is present.
func (e *Entry) Get(key string) (string, bool) {
	for _, l := range e.lines {
		if l.isKV && l.key == key {
			return l.value, true
		}
	}
	return "", false
}

// Set updates the first occurrence of key in place, or appends a new line
// when the key is absent.
func (e *Entry) Set(key, value string) {
	for i, l := range e.lines {
		if l.isKV && l.key == key {
			e.lines[i].value = value
			return
		}
	}
	e.lines = append(e.lines, line{key: key, value: value, isKV: true})
}

// Keys returns every key in insertion order.
func (e *Entry) Keys() []string {
	keys := make([]string, 0, len(e.lines))
	for _, l := range e.lines {
		if l.isKV {
			keys = append(keys, l.key)
		}
	}
	return keys
}

// String renders the entry back to descriptor text.
func (e *Entry) String() string {
	var builder strings.Builder
	for _, l := range e.lines {
		if l.isKV {
			builder.WriteString(l.key)
			builder.WriteByte('=')
			builder.WriteString(l.value)
		} else {
			builder.WriteString(l.raw)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
