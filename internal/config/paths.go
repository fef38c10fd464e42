package config

import "path/filepath"

// resolvePath makes p absolute relative to baseDir. Empty and absolute paths
// are returned cleaned but otherwise unchanged.
func resolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
