package rawio

import (
	"io/fs"
	"os"
)

// FS is the slice of the filesystem the service needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// OSFS implements FS on the host filesystem.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error)         { return os.Stat(name) }
func (OSFS) ReadFile(name string) ([]byte, error)          { return os.ReadFile(name) }
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
