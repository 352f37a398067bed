// Package walker enumerates the icon files under a scan root.
package walker

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// Walk returns every .svg file under root at any depth, sorted by relative
// path. Hidden directories are skipped, hidden .svg files are not, and
// symlinked directories are not followed. An unreadable directory fails the whole walk.
func Walk(fsys types.FS, root string) ([]types.IconFile, error) {
	logger := logging.GetLogger("walker")
	logger.Trace().Str("root", root).Msg("Walking icon root")

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "icon root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access icon root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "icon root is not a directory").
			WithDetail("path", root)
	}

	var files []types.IconFile
	if err := walkDir(fsys, root, "", &files); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	logger.Info().Int("count", len(files)).Str("root", root).Msg("Found icon files")
	return files, nil
}

func walkDir(fsys types.FS, dir, rel string, files *[]types.IconFile) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)
		relPath := path.Join(rel, name)

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") {
				continue
			}
			if err := walkDir(fsys, absPath, relPath, files); err != nil {
				return err
			}
			continue
		}
		if entry.Type()&fs.ModeSymlink == 0 && !entry.Type().IsRegular() {
			continue
		}
		if !IsIconFile(name) {
			continue
		}
		*files = append(*files, types.IconFile{AbsPath: absPath, RelPath: relPath})
	}
	return nil
}

// IsIconFile reports whether name carries the icon extension, ignoring case.
func IsIconFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), types.IconExtension)
}
