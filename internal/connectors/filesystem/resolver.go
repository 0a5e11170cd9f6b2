package filesystem

import "strings"

// ResolvePath converts an input location to a local path.
// Handles file:// URIs and bare paths.
func ResolvePath(location string) string {
	if strings.HasPrefix(location, "file://") {
		return strings.TrimPrefix(location, "file://")
	}
	return location
}
