package rawio

import (
	"fmt"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Service performs raw text I/O against absolute paths.
type Service struct {
	fs FS
}

// New returns a Service backed by fsys. A nil fsys means the host filesystem.
func New(fsys FS) *Service {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &Service{fs: fsys}
}

// ReadText returns the content of the file at path decoded with the named
// encoding. An empty encoding means UTF-8.
func (s *Service) ReadText(path, encodingName string) (string, error) {
	if !IsSafePath(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return "", classify(err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", classify(err)
	}
	content, err := decode(enc, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}

// WriteText creates or truncates the file at path and writes content encoded
// with the named encoding. Missing parent directories are created.
func (s *Service) WriteText(path, content, encodingName string) error {
	if !IsSafePath(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return err
	}
	data, err := encode(enc, content)
	if err != nil {
		return err
	}

	// MkdirAll returns nil when the directory already exists, so racing
	// writers into the same new directory are fine.
	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return classify(err)
	}
	if err := s.fs.WriteFile(path, data, filePerm); err != nil {
		return classify(err)
	}
	return nil
}
