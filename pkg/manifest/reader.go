package manifest

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// Reader loads generated output back, the way the browser UI does: manifest
// first, then collection files on demand.
type Reader struct {
	fs           types.FS
	dir          string
	manifestName string
}

// NewReader creates a Reader over dir. An empty manifest name means
// "manifest.json".
func NewReader(fsys types.FS, dir, manifestName string) *Reader {
	if manifestName == "" {
		manifestName = "manifest.json"
	}
	return &Reader{fs: fsys, dir: dir, manifestName: manifestName}
}

// Manifest reads the top-level manifest.
func (r *Reader) Manifest() (types.Manifest, error) {
	var m types.Manifest
	if err := r.decode(filepath.Join(r.dir, r.manifestName), &m); err != nil {
		return types.Manifest{}, err
	}
	return m, nil
}

// Collection reads one collection file.
func (r *Reader) Collection(name string) ([]types.IconRecord, error) {
	var records []types.IconRecord
	if err := r.decode(filepath.Join(r.dir, CollectionFile(name)), &records); err != nil {
		return nil, err.WithDetail("collection", name)
	}
	return records, nil
}

// All reads every collection listed in the manifest, in manifest order.
func (r *Reader) All() ([]types.IconRecord, error) {
	m, err := r.Manifest()
	if err != nil {
		return nil, err
	}
	var all []types.IconRecord
	for _, name := range m.Collections {
		records, err := r.Collection(name)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

func (r *Reader) decode(p string, v interface{}) *errors.IconlibError {
	data, err := r.fs.ReadFile(p)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrNotFound, "%s does not exist", p).
				WithDetail("path", p)
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", p).
			WithDetail("path", p)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, errors.ErrManifestParse, "cannot parse %s", p).
			WithDetail("path", p)
	}
	return nil
}
