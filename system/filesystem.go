// Package system abstracts the file system that sources and config files are
// read from.
package system

import (
	"io/fs"
	"os"
)

// VirtualFS is where sources and config files are read from. Tests use an
// fstest.MapFS, the linter defaults to FileSystem.
type VirtualFS interface {
	fs.FS
}

// FileSystem reads from the host. Names are passed to the operating system as
// given, so absolute paths and paths relative to the working directory work,
// unlike with os.DirFS.
type FileSystem struct{}

var _ VirtualFS = (*FileSystem)(nil)

func (f *FileSystem) Open(name string) (fs.File, error) {
	return os.Open(name) //nolint:gosec
}

// ReadFile reads name from fsys. A nil fsys reads from the host.
func ReadFile(fsys VirtualFS, name string) ([]byte, error) {
	if fsys == nil {
		fsys = &FileSystem{}
	}
	return fs.ReadFile(fsys, name)
}
