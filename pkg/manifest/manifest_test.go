package manifest_test

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/filesystem"
	"github.com/arthur-debert/iconlib/pkg/manifest"
	"github.com/arthur-debert/iconlib/pkg/testutil"
	"github.com/arthur-debert/iconlib/pkg/types"
)

const out = "/public"

func records() []types.IconRecord {
	return []types.IconRecord{
		{Name: "arrow-up", Collection: "tabler", Category: "arrows", Style: "outline", Path: "tabler/arrows/outline/arrow-up.svg", Content: `<svg fill="currentColor"><path d="M1 1"/></svg>`},
		{Name: "github", Collection: "simple-icons", Category: "general", Style: "brands", Path: "simple-icons/brands/github.svg", Content: `<svg/>`},
		{Name: "arrow-down", Collection: "tabler", Category: "arrows", Style: "outline", Path: "tabler/arrows/outline/arrow-down.svg", Content: `<svg/>`},
		{Name: "user", Collection: "font-awesome", Category: "users", Style: "solid", Path: "font-awesome/solid/users/user.svg", Content: `<svg/>`},
	}
}

func TestGroup(t *testing.T) {
	order, groups := manifest.Group(records())
	assert.Equal(t, []string{"tabler", "simple-icons", "font-awesome"}, order)
	require.Len(t, groups["tabler"], 2)
	assert.Equal(t, "arrow-up", groups["tabler"][0].Name)
	assert.Equal(t, "arrow-down", groups["tabler"][1].Name)
}

func TestWrite(t *testing.T) {
	fsys := filesystem.NewMemory()
	w := manifest.NewWriter(fsys, manifest.Options{Dir: out, Pretty: true})

	res, err := w.Write(records())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "manifest.json"), res.Manifest)
	assert.Equal(t, []string{"font-awesome", "simple-icons", "tabler"}, res.Collections)
	assert.Len(t, res.Files, 3)

	data, err := fsys.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	var m types.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, []string{"font-awesome", "simple-icons", "tabler"}, m.Collections)

	data, err = fsys.ReadFile(filepath.Join(out, "tabler.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content": "<svg fill=\"currentColor\"><path d=\"M1 1\"/></svg>"`)
	assert.NotContains(t, string(data), `\u003c`)

	var tabler []types.IconRecord
	require.NoError(t, json.Unmarshal(data, &tabler))
	assert.Equal(t, []types.IconRecord{records()[0], records()[2]}, tabler)

	_, err = fsys.Stat(filepath.Join(out, "tabler.json.tmp"))
	assert.Error(t, err, "temporary file should be renamed away")
}

func TestWrite_ManifestLast(t *testing.T) {
	ifs := testutil.NewInstrumentedFS(filesystem.NewMemory())
	w := manifest.NewWriter(ifs, manifest.Options{Dir: out})

	_, err := w.Write(records())
	require.NoError(t, err)

	writes := ifs.Writes()
	manifestPath := filepath.Join(out, "manifest.json")
	require.NotEmpty(t, writes)
	assert.Equal(t, manifestPath, writes[len(writes)-1])

	firstManifestWrite := -1
	for i, p := range writes {
		if p == manifestPath+".tmp" {
			firstManifestWrite = i
			break
		}
	}
	require.NotEqual(t, -1, firstManifestWrite)
	for _, c := range []string{"tabler", "simple-icons", "font-awesome"} {
		idx := indexOf(writes, filepath.Join(out, c+".json"))
		require.NotEqual(t, -1, idx, c)
		assert.Less(t, idx, firstManifestWrite, "%s must be published before the manifest", c)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	fsys := filesystem.NewMemory()
	w := manifest.NewWriter(fsys, manifest.Options{Dir: out, Pretty: true})

	_, err := w.Write(records())
	require.NoError(t, err)
	first, err := fsys.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	firstTabler, err := fsys.ReadFile(filepath.Join(out, "tabler.json"))
	require.NoError(t, err)

	_, err = w.Write(records())
	require.NoError(t, err)
	second, err := fsys.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	secondTabler, err := fsys.ReadFile(filepath.Join(out, "tabler.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTabler, secondTabler)
}

func TestWrite_PhaseOneFailureKeepsManifest(t *testing.T) {
	mem := filesystem.NewMemory()
	require.NoError(t, mem.MkdirAll(out, 0755))
	prior := []byte(`{"collections":["old"]}`)
	require.NoError(t, mem.WriteFile(filepath.Join(out, "manifest.json"), prior, 0644))

	ifs := testutil.NewInstrumentedFS(mem)
	ifs.FailWrite(filepath.Join(out, "simple-icons.json"))
	w := manifest.NewWriter(ifs, manifest.Options{Dir: out})

	_, err := w.Write(records())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, filepath.Join(out, "simple-icons.json"), errors.GetErrorDetails(err)["path"])

	got, err := mem.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	assert.Equal(t, prior, got)
	assert.Equal(t, -1, indexOf(ifs.Writes(), filepath.Join(out, "manifest.json.tmp")))
}

func TestWrite_CollectionShadowsManifest(t *testing.T) {
	tests := []struct {
		name       string
		manifest   string
		collection string
	}{
		{"default manifest name", "", "manifest"},
		{"custom manifest name", "index.json", "index"},
		{"differs only in case", "", "Manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			recs := append(records(), types.IconRecord{
				Name: "up", Collection: tt.collection, Category: "general", Style: "solid",
				Path: tt.collection + "/solid/up.svg", Content: "<svg/>",
			})

			w := manifest.NewWriter(fsys, manifest.Options{Dir: out, ManifestName: tt.manifest})
			_, err := w.Write(recs)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, tt.collection, errors.GetErrorDetails(err)["collection"])

			// nothing is published
			_, err = fsys.Stat(filepath.Join(out, "tabler.json"))
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestWrite_Empty(t *testing.T) {
	fsys := filesystem.NewMemory()
	res, err := manifest.NewWriter(fsys, manifest.Options{Dir: out}).Write(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Files)

	data, err := fsys.ReadFile(res.Manifest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"collections":[]}`, string(data))
}

func TestReader(t *testing.T) {
	fsys := filesystem.NewMemory()
	_, err := manifest.NewWriter(fsys, manifest.Options{Dir: out}).Write(records())
	require.NoError(t, err)

	r := manifest.NewReader(fsys, out, "")
	m, err := r.Manifest()
	require.NoError(t, err)
	assert.Equal(t, []string{"font-awesome", "simple-icons", "tabler"}, m.Collections)

	tabler, err := r.Collection("tabler")
	require.NoError(t, err)
	assert.Len(t, tabler, 2)

	all, err := r.All()
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "font-awesome", all[0].Collection)
}

func TestReader_Errors(t *testing.T) {
	fsys := filesystem.NewMemory()
	r := manifest.NewReader(fsys, out, "")

	_, err := r.Manifest()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	require.NoError(t, fsys.MkdirAll(out, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(out, "broken.json"), []byte("[{"), 0644))
	_, err = r.Collection("broken")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	assert.Equal(t, "broken", errors.GetErrorDetails(err)["collection"])
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
