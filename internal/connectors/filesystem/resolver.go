package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolvePath converts a document identifier to a local path.
// Handles file:// URIs and bare paths; the result is cleaned.
func ResolvePath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
