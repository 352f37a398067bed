package hints

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/filesystem"
	"github.com/arthur-debert/iconlib/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteIcons(t, fsys, "/icons", map[string]string{
		"phosphor/.iconlib.toml": "layout = \"style-first\"\nstyles = [\"bold\", \"fill\"]\n",
		"lucide/.iconlib.toml":   "layout = \"flat\"\n",
		"tabler/outline/up.svg":  "<svg/>",
	})

	got, err := Load(fsys, "/icons", ".iconlib.toml", []string{"tabler", "phosphor", "lucide"})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, Hint{Layout: "style-first", Styles: []string{"bold", "fill"}}, got["phosphor"])
	assert.Equal(t, Hint{Layout: "flat"}, got["lucide"])
	_, ok := got["tabler"]
	assert.False(t, ok)
}

func TestLoad_Disabled(t *testing.T) {
	got, err := Load(filesystem.NewMemory(), "/icons", "", []string{"tabler"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_InvalidHint(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteIcons(t, fsys, "/icons", map[string]string{
		"phosphor/.iconlib.toml": "layout = \"zigzag\"\n",
	})

	_, err := Load(fsys, "/icons", ".iconlib.toml", []string{"phosphor"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHintParse))
	assert.Equal(t, filepath.Join("/icons", "phosphor", ".iconlib.toml"), errors.GetErrorDetails(err)["path"])
}

func TestLoad_UnreadableHint(t *testing.T) {
	fsys := testutil.NewInstrumentedFS(filesystem.NewMemory())
	testutil.WriteIcons(t, fsys, "/icons", map[string]string{
		"phosphor/.iconlib.toml": "layout = \"flat\"\n",
	})
	fsys.FailRead(filepath.Join("/icons", "phosphor", ".iconlib.toml"))

	_, err := Load(fsys, "/icons", ".iconlib.toml", []string{"phosphor"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Hint
		wantErr bool
	}{
		{"empty", "", Hint{}, false},
		{"layout only", `layout = "category-first"`, Hint{Layout: "category-first"}, false},
		{"styles only", `styles = ["outline"]`, Hint{Styles: []string{"outline"}}, false},
		{"unknown key", `colour = "red"`, Hint{}, true},
		{"bad syntax", `layout = `, Hint{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
