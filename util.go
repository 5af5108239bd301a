package gosm

import (
	"path/filepath"
	"strings"
)

func IsSimfilePath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".sm"
}

// stripComment cuts s at the first "//".
func stripComment(s string) string {
	if i := strings.Index(s, commentMarker); i >= 0 {
		return s[:i]
	}
	return s
}
