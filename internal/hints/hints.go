// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSourceFile returns hints for an unreadable source file.
func ForSourceFile(path string) string {
	if path != "" && fileutil.DirExists(path) {
		return format("--source_file must be a file, not a directory")
	}
	return format("check the --source_file path and read permissions")
}

// ForDestination returns hints for destination write errors.
func ForDestination(path string) string {
	dir := filepath.Dir(path)
	if !fileutil.DirExists(dir) {
		return format("directory " + dir + " does not exist; create it first")
	}
	return format("check the destination directory is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a CSS file path")
}

// ForHighlightStyle returns hints for unknown highlight styles.
// Only the first few names are listed; chroma ships dozens.
func ForHighlightStyle(available []string) string {
	const maxListed = 8
	if len(available) == 0 {
		return ""
	}
	listed := available
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = ", ..."
	}
	return format("try one of: " + strings.Join(listed, ", ") + suffix)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
