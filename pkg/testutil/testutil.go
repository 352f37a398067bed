package testutil

import (
	"os"
	"path"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/arthur-debert/iconlib/pkg/types"
)

// CreateFile writes content to the slash separated name under dir on the
// real filesystem, creating parents, and returns the full path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", p, err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", p, err)
	}
	return p
}

// FileExists reports whether p is a regular file.
func FileExists(t *testing.T, p string) bool {
	t.Helper()

	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// AssertNoFile fails the test when p exists. Leftover ".tmp" siblings of
// published files are checked this way.
func AssertNoFile(t *testing.T, p string) {
	t.Helper()

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", p)
	}
}

// WriteIcons writes files (slash-separated paths relative to root) into fsys.
func WriteIcons(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := fsys.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

// SVG returns a minimal icon document with the given root attributes.
func SVG(attrs string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"` + attrs + `><path d="M12 2L2 22h20z"/></svg>`
}

// IconTree returns n icons spread over a tabler-like category-first layout.
func IconTree(n int) map[string]string {
	files := make(map[string]string, n)
	for i := 0; i < n; i++ {
		category := []string{"arrows", "media", "weather"}[i%3]
		rel := path.Join("tabler", category, "outline", "icon-"+strconv.Itoa(i)+".svg")
		files[rel] = SVG("")
	}
	return files
}
