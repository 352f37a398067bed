// Package hints reads per-collection layout hint files.
//
// A collection directory may contain a small TOML file (".iconlib.toml" by
// default) that pins the collection's layout strategy and extends the style
// vocabulary used to recognise style directories:
//
//	layout = "style-first"
//	styles = ["outline", "filled"]
//
// Hints are read once, before classification, so the classifier itself never
// touches the filesystem.
package hints

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// Hint is the content of one hint file.
type Hint struct {
	Layout string   `toml:"layout"`
	Styles []string `toml:"styles"`
}

// Load reads the hint file of every named collection under root. Collections
// without a hint file are absent from the result.
func Load(fsys types.FS, root, hintFile string, collections []string) (map[string]Hint, error) {
	logger := logging.GetLogger("hints")
	result := make(map[string]Hint)
	if hintFile == "" {
		return result, nil
	}

	names := append([]string(nil), collections...)
	sort.Strings(names)

	for _, collection := range names {
		hintPath := filepath.Join(root, collection, hintFile)
		data, err := fsys.ReadFile(hintPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, errors.ErrFileRead, "cannot read layout hint").
				WithDetails(map[string]interface{}{"path": hintPath, "collection": collection})
		}

		hint, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrHintParse, "invalid layout hint for collection %s", collection).
				WithDetails(map[string]interface{}{"path": hintPath, "collection": collection})
		}

		logger.Debug().
			Str("collection", collection).
			Str("layout", hint.Layout).
			Strs("styles", hint.Styles).
			Msg("Loaded layout hint")
		result[collection] = hint
	}
	return result, nil
}

// Parse decodes a hint file. Unknown keys and unknown layouts are rejected.
func Parse(data []byte) (Hint, error) {
	var hint Hint
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&hint); err != nil {
		return Hint{}, err
	}
	if hint.Layout != "" && !config.IsStrategy(hint.Layout) {
		return Hint{}, errors.Newf(errors.ErrHintParse, "unknown layout %q", hint.Layout).
			WithDetail("layout", hint.Layout)
	}
	return hint, nil
}
