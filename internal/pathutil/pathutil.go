// Package pathutil validates the path segments item file names are derived
// from.
package pathutil

import "strings"

// Safe reports whether name can be used as a single path segment: non-empty,
// free of path separators and NUL, and not a dot directory.
func Safe(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") || strings.ContainsRune(name, 0) {
		return false
	}
	return true
}
