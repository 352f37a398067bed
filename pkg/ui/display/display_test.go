package display_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconlib/pkg/search"
	"github.com/arthur-debert/iconlib/pkg/types"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"font-awesome", "Font Awesome"},
		{"simple-icons", "Simple Icons"},
		{"tabler", "Tabler"},
		{"material_design", "Material Design"},
		{"heroicons-v2", "Heroicons V2"},
		{"--", "--"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, display.DisplayName(tt.in))
		})
	}
}

func TestNewBuildSummary(t *testing.T) {
	res := &types.BuildResult{
		InputDir:  "src",
		OutputDir: "public",
		Files:     3,
		Icons:     3,
		Collections: []types.CollectionSummary{
			{Name: "font-awesome", Icons: 3, File: "font-awesome.json"},
		},
		Duration: time.Second,
	}
	b := display.NewBuildSummary(res)
	require.Len(t, b.Collections, 1)
	assert.Equal(t, "Font Awesome", b.Collections[0].DisplayName)
	assert.Equal(t, "public", b.Output)
}

func TestNewSearchResult(t *testing.T) {
	r := display.NewSearchResult("up", []search.Hit{{
		Record:   types.IconRecord{Name: "arrow-up", Collection: "tabler", Path: "tabler/a/b/arrow-up.svg"},
		Distance: 6,
		Field:    search.FieldName,
	}})
	require.Len(t, r.Hits, 1)
	assert.Equal(t, "name", r.Hits[0].Matched)
	assert.Equal(t, 6, r.Hits[0].Distance)
}

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		name   string
		result interface{}
		want   string
	}{
		{
			name: "list",
			result: &display.CollectionList{Collections: []display.CollectionSummary{
				{Name: "font-awesome", DisplayName: "Font Awesome", Icons: 2},
			}},
			want: "font-awesome\tFont Awesome\t2\n",
		},
		{
			name:   "empty list",
			result: &display.CollectionList{},
			want:   "No collections found\n",
		},
		{
			name: "stats",
			result: &display.StatsResult{Collections: []display.CollectionSummary{{
				Name:       "tabler",
				Icons:      3,
				Styles:     map[string]int{"outline": 2, "filled": 1},
				Categories: map[string]int{"arrows": 3},
			}}},
			want: "tabler (3 icons)\n  styles: filled=1 outline=2\n  categories: arrows=3\n",
		},
		{
			name:   "no search hits",
			result: &display.SearchResult{Query: "zzz"},
			want:   "No icons match \"zzz\"\n",
		},
		{
			name: "classify",
			result: &display.ClassifyResult{Entries: []display.ClassifiedPath{{
				Path: "tabler/arrows/outline/up.svg", Name: "up", Collection: "tabler",
				Category: "arrows", Style: "outline", Strategy: "category-first",
			}}},
			want: "tabler/arrows/outline/up.svg\tname=up collection=tabler category=arrows style=outline strategy=category-first\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handled, err := display.NewTextRenderer(&buf).Render(tt.result)
			require.NoError(t, err)
			assert.True(t, handled)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderer_UnknownType(t *testing.T) {
	var buf bytes.Buffer
	handled, err := display.NewTextRenderer(&buf).Render(42)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, buf.String())
}
