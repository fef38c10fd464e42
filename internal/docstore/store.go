// Package docstore persists JSON objects as files addressed by
// (collection, filename).
//
// Layout is <root>/<collection>/<filename>.json with one pretty-printed
// object per file. There is no index; the directory tree is the catalog.
// Concurrent saves to the same identity are not coordinated and the last
// writer wins.
package docstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/localplatform/localplatform/internal/rawio"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	indent   = "  "
)

// Store is a document store rooted at a directory.
type Store struct {
	root string
	fs   rawio.FS
}

// New returns a Store rooted at root. The directory is created lazily.
// A nil fsys means the host filesystem.
func New(root string, fsys rawio.FS) *Store {
	if fsys == nil {
		fsys = rawio.OSFS{}
	}
	return &Store{root: root, fs: fsys}
}

// Root returns the directory documents are stored under.
func (s *Store) Root() string {
	return s.root
}

// Path returns the file that backs the given identity.
func (s *Store) Path(collection, filename string) string {
	return ComputePath(s.root, collection, filename)
}

// Save serializes data and writes it to the identity's file, replacing any
// previous document. It returns the path written.
func (s *Store) Save(collection, filename string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("%w: encode %s/%s: %w", ErrIO, collection, filename, err)
	}
	return s.write(collection, filename, buf.Bytes())
}

// SaveRaw is Save for an already-encoded object. The caller's key order is
// kept in the file; escapes and repeated keys are normalized the way Save
// would write them.
func (s *Store) SaveRaw(collection, filename string, doc json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return "", ErrNotObject
	}
	out, err := reencode(trimmed)
	if err != nil {
		return "", err
	}
	return s.write(collection, filename, out)
}

// Load reads and parses the document at the identity. Numbers are returned
// as json.Number so integer values survive unchanged.
func (s *Store) Load(collection, filename string) (map[string]any, error) {
	raw, err := s.read(collection, filename)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, s.Path(collection, filename))
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.Path(collection, filename), err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: not an object", ErrCorrupt, s.Path(collection, filename))
	}
	return doc, nil
}

// LoadRaw returns the stored document bytes after checking they hold valid
// JSON.
func (s *Store) LoadRaw(collection, filename string) (json.RawMessage, error) {
	raw, err := s.read(collection, filename)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, s.Path(collection, filename))
	}
	return json.RawMessage(bytes.TrimSpace(raw)), nil
}

func (s *Store) write(collection, filename string, data []byte) (string, error) {
	path := s.Path(collection, filename)
	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := s.fs.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return path, nil
}

func (s *Store) read(collection, filename string) ([]byte, error) {
	path := s.Path(collection, filename)
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, filename)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return raw, nil
}
