// Package fs implements file access and content hashing for the resolver.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.FileSystem = (*OSFileSystem)(nil)
	_ ports.FileSystem = (*FSFileSystem)(nil)
)

// OSFileSystem reads files from the local disk.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether a regular file exists at path.
func (*OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the contents of the file at path.
func (*OSFileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// FSFileSystem reads files from an fs.FS such as an embed.FS.
// Paths are interpreted relative to the root of the file system.
type FSFileSystem struct {
	fsys iofs.FS
}

// NewFSFileSystem creates a FileSystem backed by fsys.
func NewFSFileSystem(fsys iofs.FS) *FSFileSystem {
	return &FSFileSystem{fsys: fsys}
}

// Exists reports whether a regular file exists at name.
func (f *FSFileSystem) Exists(name string) bool {
	p, ok := fsPath(name)
	if !ok {
		return false
	}
	info, err := iofs.Stat(f.fsys, p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the contents of the file at name.
func (f *FSFileSystem) ReadFile(name string) ([]byte, error) {
	p, ok := fsPath(name)
	if !ok {
		return nil, zerr.With(zerr.Wrap(iofs.ErrInvalid, "invalid path"), "path", name)
	}
	data, err := iofs.ReadFile(f.fsys, p)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", name)
	}
	return data, nil
}

// fsPath converts a host path into the unrooted slash form fs.FS expects.
func fsPath(name string) (string, bool) {
	p := path.Clean(filepath.ToSlash(name))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		p = "."
	}
	return p, iofs.ValidPath(p)
}

// IsNotExist reports whether err means the file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}
