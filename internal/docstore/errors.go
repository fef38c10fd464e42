package docstore

import "errors"

var (
	// ErrNotFound is returned when no document exists at an identity.
	ErrNotFound = errors.New("document not found")
	// ErrCorrupt is returned when a document file exists but is not a valid JSON object.
	ErrCorrupt = errors.New("document contains invalid JSON")
	// ErrIO is returned for disk-level failures while saving or loading.
	ErrIO = errors.New("document store I/O failure")
	// ErrNotObject is returned when the data passed to SaveRaw is not a JSON object.
	ErrNotObject = errors.New("document must be a JSON object")
)
