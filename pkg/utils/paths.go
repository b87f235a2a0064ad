// pkg/utils/paths.go - utility functions for working with file paths.

package utils

import "strings"

// NormalizeWindowsPath ensures Windows-style paths with single
// backslashes. It handles:
// - Converting forward slashes to backslashes
// - Collapsing accidental double-backslashes
// - Trimming a trailing backslash (drive roots like `E:\` keep theirs)
func NormalizeWindowsPath(path string) string {
	normalized := strings.ReplaceAll(path, "/", `\`)

	for strings.Contains(normalized, `\\`) {
		normalized = strings.ReplaceAll(normalized, `\\`, `\`)
	}

	if len(normalized) > 3 && strings.HasSuffix(normalized, `\`) {
		normalized = strings.TrimSuffix(normalized, `\`)
	}

	return normalized
}
