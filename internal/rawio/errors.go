package rawio

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidPath is returned when a path is relative or blank.
	ErrInvalidPath = errors.New("path must be absolute")
	// ErrNotFound is returned when no regular file exists at the path.
	ErrNotFound = errors.New("file not found")
	// ErrAccessDenied is returned on OS-level permission failures.
	ErrAccessDenied = errors.New("permission denied")
	// ErrDecode is returned when file bytes are invalid under the requested encoding.
	ErrDecode = errors.New("cannot decode file")
	// ErrEncode is returned when content cannot be represented in the requested encoding.
	ErrEncode = errors.New("cannot encode content")
	// ErrUnknownEncoding is returned for encoding names that do not resolve.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// classify maps an OS error onto the package sentinels, keeping the original
// error in the chain.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	default:
		return err
	}
}
