package types

import (
	"io/fs"
)

// FS is everything the pipeline needs from a filesystem. The walker and
// loader only read; the manifest writer needs MkdirAll, WriteFile, Rename
// and Remove to publish files through a temporary sibling.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)

	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
