package docstore

import (
	"path/filepath"
	"regexp"
)

// Extension is appended to every document filename.
const Extension = ".json"

var (
	collectionPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	filenamePattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ValidCollection reports whether name is an acceptable collection identifier.
func ValidCollection(name string) bool {
	return collectionPattern.MatchString(name)
}

// ValidFilename reports whether name is an acceptable document identifier.
func ValidFilename(name string) bool {
	return filenamePattern.MatchString(name)
}

// ComputePath maps a document identity to root/collection/filename.json.
// Identifiers must already have passed ValidCollection and ValidFilename.
func ComputePath(root, collection, filename string) string {
	return filepath.Join(root, collection, filename+Extension)
}
