package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconlib/pkg/search"
	"github.com/arthur-debert/iconlib/pkg/types"
)

var icons = []types.IconRecord{
	{Name: "arrow-up", Collection: "tabler", Category: "arrows", Style: "outline", Path: "tabler/arrows/outline/arrow-up.svg"},
	{Name: "arrow-up", Collection: "tabler", Category: "arrows", Style: "filled", Path: "tabler/arrows/filled/arrow-up.svg"},
	{Name: "arrow-up-right", Collection: "tabler", Category: "arrows", Style: "outline", Path: "tabler/arrows/outline/arrow-up-right.svg"},
	{Name: "cloud", Collection: "tabler", Category: "weather", Style: "outline", Path: "tabler/weather/outline/cloud.svg"},
	{Name: "github", Collection: "simple-icons", Category: "general", Style: "brands", Path: "simple-icons/brands/github.svg"},
	{Name: "sun", Collection: "font-awesome", Category: "weather", Style: "solid", Path: "font-awesome/solid/weather/sun.svg"},
}

func paths(hits []search.Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Record.Path
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query search.Query
		want  []string
	}{
		{
			name:  "empty query returns everything by path",
			query: search.Query{},
			want: []string{
				"font-awesome/solid/weather/sun.svg",
				"simple-icons/brands/github.svg",
				"tabler/arrows/filled/arrow-up.svg",
				"tabler/arrows/outline/arrow-up-right.svg",
				"tabler/arrows/outline/arrow-up.svg",
				"tabler/weather/outline/cloud.svg",
			},
		},
		{
			name:  "closest name first",
			query: search.Query{Text: "arrowup", Style: "outline"},
			want: []string{
				"tabler/arrows/outline/arrow-up.svg",
				"tabler/arrows/outline/arrow-up-right.svg",
			},
		},
		{
			name:  "case insensitive",
			query: search.Query{Text: "GitHub"},
			want:  []string{"simple-icons/brands/github.svg"},
		},
		{
			name:  "category match",
			query: search.Query{Text: "weather"},
			want: []string{
				"font-awesome/solid/weather/sun.svg",
				"tabler/weather/outline/cloud.svg",
			},
		},
		{
			name:  "collection filter",
			query: search.Query{Text: "weather", Collection: "tabler"},
			want:  []string{"tabler/weather/outline/cloud.svg"},
		},
		{
			name:  "limit",
			query: search.Query{Text: "arrow", Limit: 1},
			want:  []string{"tabler/arrows/filled/arrow-up.svg"},
		},
		{
			name:  "no match",
			query: search.Query{Text: "zzz"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths(search.Search(icons, tt.query)))
		})
	}
}

func TestSearch_Field(t *testing.T) {
	hits := search.Search(icons, search.Query{Text: "cloud"})
	require.Len(t, hits, 1)
	assert.Equal(t, search.FieldName, hits[0].Field)
	assert.Zero(t, hits[0].Distance)

	hits = search.Search(icons, search.Query{Text: "weather", Collection: "font-awesome"})
	require.Len(t, hits, 1)
	assert.Equal(t, search.FieldCategory, hits[0].Field)
	assert.Equal(t, 1, hits[0].Distance)
}

func TestStyles(t *testing.T) {
	assert.Equal(t, []string{"brands", "filled", "outline", "solid"}, search.Styles(icons))
}
