package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/filesystem"
	"github.com/arthur-debert/iconlib/pkg/testutil"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ICONLIB_LOG_FILE", filepath.Join(t.TempDir(), "iconlib.log"))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// buildLibrary writes six tabler icons and builds them, returning the
// output directory.
func buildLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	input := filepath.Join(root, "icons")
	output := filepath.Join(root, "public")
	testutil.WriteIcons(t, filesystem.NewOS(), input, testutil.IconTree(6))

	_, err := execute(t, "build", "-i", input, "-o", output, "-f", "json")
	require.NoError(t, err)
	return output
}

func TestBuildCommand(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "icons")
	output := filepath.Join(root, "public")
	testutil.WriteIcons(t, filesystem.NewOS(), input, testutil.IconTree(6))

	out, err := execute(t, "build", "--input", input, "--output", output, "--concurrency", "2", "--format", "json")
	require.NoError(t, err)

	var summary display.BuildSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 6, summary.Files)
	assert.Equal(t, 6, summary.Icons)
	assert.Equal(t, 6, summary.Normalized)
	require.Len(t, summary.Collections, 1)
	assert.Equal(t, "tabler", summary.Collections[0].Name)
	assert.Equal(t, "Tabler", summary.Collections[0].DisplayName)

	assert.True(t, testutil.FileExists(t, filepath.Join(output, "tabler.json")))
	assert.True(t, testutil.FileExists(t, filepath.Join(output, "manifest.json")))
	testutil.AssertNoFile(t, filepath.Join(output, "tabler.json.tmp"))
}

func TestBuildCommand_NoNormalize(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "icons")
	testutil.WriteIcons(t, filesystem.NewOS(), input, testutil.IconTree(3))

	out, err := execute(t, "build", "-i", input, "-o", filepath.Join(root, "out"), "--no-normalize", "-f", "json")
	require.NoError(t, err)

	var summary display.BuildSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 3, summary.Icons)
	assert.Equal(t, 0, summary.Normalized)
}

func TestBuildCommand_MissingInput(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "build", "-i", filepath.Join(root, "nope"), "-o", filepath.Join(root, "out"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestBuildCommand_InvalidConcurrency(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "build", "-i", root, "-o", filepath.Join(root, "out"), "-j", "0")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestListCommand(t *testing.T) {
	output := buildLibrary(t)

	out, err := execute(t, "list", "-o", output, "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "tabler\tTabler\t6")
}

func TestStatsCommand(t *testing.T) {
	output := buildLibrary(t)

	out, err := execute(t, "stats", "tabler", "-o", output, "-f", "json")
	require.NoError(t, err)

	var stats display.StatsResult
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Len(t, stats.Collections, 1)
	assert.Equal(t, 6, stats.Collections[0].Icons)
	assert.Equal(t, map[string]int{"outline": 6}, stats.Collections[0].Styles)
	assert.Equal(t, map[string]int{"arrows": 2, "media": 2, "weather": 2}, stats.Collections[0].Categories)
}

func TestStatsCommand_UnknownCollection(t *testing.T) {
	output := buildLibrary(t)

	_, err := execute(t, "stats", "lucide", "-o", output)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "lucide", errors.GetErrorDetails(err)["collection"])
}

func TestStatsCommand_NoLibrary(t *testing.T) {
	_, err := execute(t, "stats", "-o", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestSearchCommand(t *testing.T) {
	output := buildLibrary(t)

	out, err := execute(t, "search", "icon-1", "-o", output, "-f", "json")
	require.NoError(t, err)

	var result display.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "icon-1", result.Query)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "icon-1", result.Hits[0].Name)
	assert.Equal(t, 0, result.Hits[0].Distance)
	assert.Equal(t, []string{"outline"}, result.Styles)
}

func TestSearchCommand_Filters(t *testing.T) {
	output := buildLibrary(t)

	out, err := execute(t, "search", "icon", "-c", "tabler", "-s", "filled", "-o", output, "-f", "json")
	require.NoError(t, err)

	var result display.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Empty(t, result.Hits)

	out, err = execute(t, "search", "icon", "-n", "2", "-o", output, "-f", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Hits, 2)
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "font-awesome/solid/house.svg", "tabler/arrows/outline/arrow-up.svg", "-f", "json")
	require.NoError(t, err)

	var result display.ClassifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Entries, 2)

	fa := result.Entries[0]
	assert.Equal(t, "house", fa.Name)
	assert.Equal(t, "font-awesome", fa.Collection)
	assert.Equal(t, "solid", fa.Style)
	assert.Equal(t, "style-first", fa.Strategy)

	tabler := result.Entries[1]
	assert.Equal(t, "arrows", tabler.Category)
	assert.Equal(t, "outline", tabler.Style)
	assert.Equal(t, "category-first", tabler.Strategy)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[loader]")
	assert.Contains(t, out, "currentColor")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "iconlib version dev")
}

func TestRootCommand(t *testing.T) {
	t.Run("no command", func(t *testing.T) {
		_, err := execute(t)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "classify", "a/b.svg", "-f", "yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("help topic", func(t *testing.T) {
		out, err := execute(t, "help", "layouts", "-f", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "collection")
	})
}

func TestReportError(t *testing.T) {
	cause := errors.New(errors.ErrFileRead, "cannot read icon").WithDetail("path", "icons/tabler/a.svg")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, "json", cause)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "FILE_READ", got["code"])
	})

	t.Run("bad format falls back to text", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, "yaml", cause)
		assert.Equal(t, "Error: [FILE_READ] cannot read icon\n", buf.String())
	})
}
