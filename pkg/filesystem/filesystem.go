package filesystem

import (
	"io/fs"
	"sort"

	"github.com/spf13/afero"

	"github.com/arthur-debert/iconlib/pkg/types"
)

// Afero adapts an afero.Fs to types.FS.
type Afero struct {
	base afero.Fs
}

var _ types.FS = (*Afero)(nil)

// New wraps base.
func New(base afero.Fs) *Afero {
	return &Afero{base: base}
}

// NewOS returns the host filesystem.
func NewOS() types.FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() types.FS {
	return New(afero.NewMemMapFs())
}

// NewReadOnly returns base with every write rejected. Inspection commands
// use it so a bug can never touch a published library.
func NewReadOnly(base afero.Fs) types.FS {
	return New(afero.NewReadOnlyFs(base))
}

func (a *Afero) Stat(name string) (fs.FileInfo, error) {
	return a.base.Stat(name)
}

// ReadFile fails on directories on every backend; MemMapFs would otherwise
// return an empty body.
func (a *Afero) ReadFile(name string) ([]byte, error) {
	info, err := a.base.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.base, name)
}

func (a *Afero) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.base, name, data, perm)
}

func (a *Afero) MkdirAll(path string, perm fs.FileMode) error {
	return a.base.MkdirAll(path, perm)
}

// ReadDir returns entries sorted by name.
func (a *Afero) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.base, name)
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (a *Afero) Remove(name string) error {
	return a.base.Remove(name)
}

// Rename replaces newpath if it exists.
func (a *Afero) Rename(oldpath, newpath string) error {
	return a.base.Rename(oldpath, newpath)
}
