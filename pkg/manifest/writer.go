// Package manifest writes the per-collection output files and the top-level
// manifest, and reads them back.
//
// Output is produced in two phases. Phase 1 writes one <collection>.json per
// collection. Phase 2 writes the manifest, and only runs once every phase 1
// file is in place, so a published manifest never names a missing file.
// Each file goes to a ".tmp" sibling first and is then renamed over the
// target.
package manifest

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/types"
)

const tmpSuffix = ".tmp"

// Options configures a Writer.
type Options struct {
	Dir          string
	ManifestName string
	Pretty       bool
}

// Writer publishes records to an output directory.
type Writer struct {
	fs           types.FS
	dir          string
	manifestName string
	pretty       bool
}

// WriteResult lists what a Write call produced.
type WriteResult struct {
	// Files are the collection files in the order they were written.
	Files       []string
	Manifest    string
	Collections []string
}

// NewWriter creates a Writer. An empty manifest name means "manifest.json".
func NewWriter(fsys types.FS, opts Options) *Writer {
	name := opts.ManifestName
	if name == "" {
		name = "manifest.json"
	}
	return &Writer{
		fs:           fsys,
		dir:          opts.Dir,
		manifestName: name,
		pretty:       opts.Pretty,
	}
}

// CollectionFile is the output file name for a collection.
func CollectionFile(collection string) string {
	return collection + ".json"
}

// Group partitions records by collection. Collections appear in the order
// they are first seen and records keep their relative order.
func Group(records []types.IconRecord) ([]string, map[string][]types.IconRecord) {
	var order []string
	groups := make(map[string][]types.IconRecord)
	for _, rec := range records {
		if _, ok := groups[rec.Collection]; !ok {
			order = append(order, rec.Collection)
		}
		groups[rec.Collection] = append(groups[rec.Collection], rec)
	}
	return order, groups
}

// Write publishes records. Collections with no records get no file and are
// not listed. On error in phase 1 the manifest is left untouched.
func (w *Writer) Write(records []types.IconRecord) (WriteResult, error) {
	logger := logging.GetLogger("manifest")
	done := logging.LogOperationStart(logger, "write")
	defer done()

	order, groups := Group(records)
	for _, collection := range order {
		// case-insensitive filesystems fold the two names together
		if strings.EqualFold(CollectionFile(collection), w.manifestName) {
			return WriteResult{}, errors.Newf(errors.ErrInvalidInput,
				"collection %s would overwrite manifest %s", collection, w.manifestName).
				WithDetail("collection", collection).
				WithDetail("manifest", w.manifestName)
		}
	}

	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return WriteResult{}, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output directory %s", w.dir).
			WithDetail("path", w.dir)
	}

	result := WriteResult{}

	for _, collection := range order {
		target := filepath.Join(w.dir, CollectionFile(collection))
		data, err := w.encode(groups[collection])
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrInternal, "cannot encode collection %s", collection).
				WithDetail("collection", collection)
		}
		if err := w.publish(target, data); err != nil {
			return result, err
		}
		result.Files = append(result.Files, target)
		logger.Debug().
			Str("collection", collection).
			Int("icons", len(groups[collection])).
			Str("path", target).
			Msg("Wrote collection file")
	}

	collections := append([]string(nil), order...)
	sort.Strings(collections)
	data, err := w.encode(types.Manifest{Collections: nonNil(collections)})
	if err != nil {
		return result, errors.Wrap(err, errors.ErrInternal, "cannot encode manifest")
	}
	target := filepath.Join(w.dir, w.manifestName)
	if err := w.publish(target, data); err != nil {
		return result, err
	}
	result.Manifest = target
	result.Collections = collections

	logger.Info().
		Int("collections", len(collections)).
		Str("manifest", target).
		Msg("Published manifest")
	return result, nil
}

func (w *Writer) publish(target string, data []byte) error {
	tmp := target + tmpSuffix
	if err := w.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
			WithDetail("path", target)
	}
	if err := w.fs.Rename(tmp, target); err != nil {
		_ = w.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", target).
			WithDetail("path", target)
	}
	return nil
}

func (w *Writer) encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
