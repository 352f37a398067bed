package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []IconRecord{
		{Name: "up", Collection: "tabler", Category: "arrows", Style: "outline", Path: "tabler/arrows/outline/up.svg"},
		{Name: "github", Collection: "brands", Category: DefaultCategory, Style: "brands", Path: "brands/brands/github.svg"},
		{Name: "down", Collection: "tabler", Category: "arrows", Style: "filled", Path: "tabler/arrows/filled/down.svg"},
		{Name: "home", Collection: "tabler", Category: "buildings", Style: "outline", Path: "tabler/buildings/outline/home.svg"},
	}

	got := Summarize(records)
	require.Len(t, got, 2)

	assert.Equal(t, "brands", got[0].Name)
	assert.Equal(t, 1, got[0].Icons)

	assert.Equal(t, "tabler", got[1].Name)
	assert.Equal(t, 3, got[1].Icons)
	assert.Equal(t, map[string]int{"outline": 2, "filled": 1}, got[1].Styles)
	assert.Equal(t, map[string]int{"arrows": 2, "buildings": 1}, got[1].Categories)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
