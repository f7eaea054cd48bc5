package config

import (
	"strings"
)

// DeriveLocation resolves the user-configured category-file path against the
// browsed directory. Backslashes are normalized to forward slashes. An empty
// path means "browsed directory, default file name" (file comes back empty).
// Otherwise the path splits on its last slash: the part before it is the
// directory (falling back to the browsed directory when empty or "."), the
// part after it is the file name (empty for a trailing slash). A path with
// no slash at all is a bare file name within the browsed directory.
func DeriveLocation(configuredPath string, browseDir string) (string, string) {
	normalized := strings.ReplaceAll(configuredPath, "\\", "/")
	if normalized == "" {
		return browseDir, ""
	}

	slash := strings.LastIndex(normalized, "/")
	if slash < 0 {
		return browseDir, normalized
	}

	dir := normalized[:slash]
	file := normalized[slash+1:]
	if dir == "" || dir == "." {
		dir = browseDir
	}
	return dir, file
}
