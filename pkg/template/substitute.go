// Package template implements the placeholder substitution used to render
// descriptor files from per-browser templates.
//
// Two placeholder forms are supported:
//  1. %{key}              – replaced verbatim with the value bound to "key"
//  2. %{key ? literal}    – conditional: when the key's condition is true the
//     placeholder becomes "literal" (or "literal=value" when a value is
//     supplied); when false the placeholder is removed, together with any
//     line it occupies on its own.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	placeholderPattern = regexp.MustCompile(`%\{([^}?]+)}`)
	conditionalPattern = regexp.MustCompile(`%\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\?\s*([^}]+)}`)
)

// Substitute replaces every %{key} placeholder in input with the value bound
// to that key in vars. Placeholders without a binding are left untouched so
// the caller can detect template-authoring mistakes.
func Substitute(input string, vars map[string]string) string {
	if !placeholderPattern.MatchString(input) {
		return input
	}

	indices := placeholderPattern.FindAllStringSubmatchIndex(input, -1)

	var builder strings.Builder
	builder.Grow(len(input))

	lastPos := 0
	for _, idx := range indices {
		key := strings.TrimSpace(input[idx[2]:idx[3]])
		value, ok := vars[key]
		if !ok {
			continue
		}

		builder.WriteString(input[lastPos:idx[0]])
		builder.WriteString(value)
		lastPos = idx[1]
	}
	builder.WriteString(input[lastPos:])

	return builder.String()
}

// ReplaceConditional resolves every %{key ? literal} placeholder for the
// given conditional key. When set is true the placeholder is replaced by the
// literal, or by "literal=withValue" when withValue is non-empty. When set is
// false the placeholder is removed; a line left empty by the removal is
// dropped entirely.
func ReplaceConditional(input, key string, set bool, withValue string) (string, error) {
	pattern, err := regexp.Compile(`%\{\s*` + regexp.QuoteMeta(key) + `\s*\?\s*([^}]+)}`)
	if err != nil {
		return "", fmt.Errorf("failed to compile pattern for conditional key %q: %w", key, err)
	}

	if !pattern.MatchString(input) {
		return input, nil
	}

	lines := strings.Split(input, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		hadMatch := pattern.MatchString(line)

		replaced := pattern.ReplaceAllStringFunc(line, func(match string) string {
			if !set {
				return ""
			}
			literal := strings.TrimSpace(pattern.FindStringSubmatch(match)[1])
			if withValue != "" {
				return literal + "=" + withValue
			}
			return literal
		})

		// A placeholder that monopolized its line leaves nothing behind;
		// drop the empty remainder instead of emitting a blank line.
		if !set && hadMatch && strings.TrimSpace(replaced) == "" && strings.TrimSpace(line) != "" {
			continue
		}

		result = append(result, replaced)
	}

	return strings.Join(result, "\n"), nil
}

// UnmatchedConditionals returns the conditional keys still present in input.
// A leftover conditional means the template references a condition the
// renderer never resolved, which is a template-authoring error.
func UnmatchedConditionals(input string) []string {
	matches := conditionalPattern.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		key := m[1]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
