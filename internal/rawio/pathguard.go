package rawio

import (
	"path/filepath"
	"strings"
)

// IsSafePath reports whether path may be used for raw I/O: it must be
// absolute under the host platform's rules and not blank.
//
// No cleaning, symlink resolution or sandboxing happens here. The caller is a
// co-located UI, not a remote client.
func IsSafePath(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	return strings.TrimSpace(path) != ""
}
