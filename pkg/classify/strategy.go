package classify

import (
	"strings"

	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// Strategy maps the directories between the collection and the file name to
// a category and a style.
type Strategy func(dirs []string, styles Vocabulary) (category, style string)

var strategies = map[string]Strategy{
	config.StrategyCategoryFirst: CategoryFirst,
	config.StrategyStyleFirst:    StyleFirst,
	config.StrategyFlat:          Flat,
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// CategoryFirst reads {category}/{style}. A single directory is the style.
// Directories past the style do not take part in classification.
func CategoryFirst(dirs []string, _ Vocabulary) (string, string) {
	switch len(dirs) {
	case 0:
		return types.DefaultCategory, types.DefaultStyle
	case 1:
		return types.DefaultCategory, orDefault(dirs[0], types.DefaultStyle)
	default:
		return orDefault(dirs[0], types.DefaultCategory), orDefault(dirs[1], types.DefaultStyle)
	}
}

// StyleFirst reads {style}/{category...} when the first directory is a known
// style; the category is every remaining directory joined by "/". Paths whose
// first directory is not a style fall back to CategoryFirst.
func StyleFirst(dirs []string, styles Vocabulary) (string, string) {
	if len(dirs) == 0 || !styles.IsStyle(dirs[0]) {
		return CategoryFirst(dirs, styles)
	}
	return orDefault(strings.Join(dirs[1:], "/"), types.DefaultCategory), dirs[0]
}

// Flat reads {style}; the category is always the sentinel.
func Flat(dirs []string, _ Vocabulary) (string, string) {
	if len(dirs) == 0 {
		return types.DefaultCategory, types.DefaultStyle
	}
	return types.DefaultCategory, orDefault(dirs[0], types.DefaultStyle)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
