package classify

import (
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/types"
)

type rule struct {
	strategyName string
	strategy     Strategy
	styles       Vocabulary
}

// Table maps collection ids to layout strategies. Unknown collections use
// the category-first strategy. A Table is built once and then only read.
type Table struct {
	styles Vocabulary
	rules  map[string]rule
}

// NewTable builds a table from the layout configuration.
func NewTable(layout config.LayoutConfig) (*Table, error) {
	t := &Table{
		styles: NewVocabulary(layout.Styles...),
		rules:  make(map[string]rule),
	}

	names := make([]string, 0, len(layout.Collections))
	for name := range layout.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := t.Bind(name, layout.Collections[name], nil); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Bind assigns a strategy and extra style names to a collection. An empty
// strategy name keeps the collection's current strategy.
func (t *Table) Bind(collection, strategyName string, extraStyles []string) error {
	current, ok := t.rules[collection]
	if !ok {
		current = rule{
			strategyName: config.StrategyCategoryFirst,
			strategy:     CategoryFirst,
			styles:       t.styles,
		}
	}

	if strategyName != "" {
		strategy, found := Lookup(strategyName)
		if !found {
			return errors.Newf(errors.ErrConfigValid, "unknown layout strategy %q for collection %s", strategyName, collection).
				WithDetail("collection", collection).
				WithDetail("strategy", strategyName)
		}
		current.strategyName = strategyName
		current.strategy = strategy
	}
	if len(extraStyles) > 0 {
		current.styles = current.styles.Merge(NewVocabulary(extraStyles...))
	}

	t.rules[collection] = current
	return nil
}

// StrategyName returns the strategy name used for collection.
func (t *Table) StrategyName(collection string) string {
	return t.ruleFor(collection).strategyName
}

// Collections returns the collections with an explicit rule, sorted.
func (t *Table) Collections() []string {
	names := make([]string, 0, len(t.rules))
	for name := range t.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) ruleFor(collection string) rule {
	if r, ok := t.rules[collection]; ok {
		return r
	}
	return rule{
		strategyName: config.StrategyCategoryFirst,
		strategy:     CategoryFirst,
		styles:       t.styles,
	}
}

// Classify derives every record field except Content from a slash separated
// path relative to the scan root.
func (t *Table) Classify(relPath string) types.IconRecord {
	segments := Split(relPath)
	filename := segments[len(segments)-1]

	collection := types.DefaultCollection
	var dirs []string
	if len(segments) > 1 {
		collection = segments[0]
		dirs = segments[1 : len(segments)-1]
	}

	r := t.ruleFor(collection)
	category, style := r.strategy(dirs, r.styles)

	return types.IconRecord{
		Name:       Name(filename),
		Collection: collection,
		Category:   category,
		Style:      style,
		Path:       strings.Join(segments, "/"),
	}
}

// Split cleans a relative path and splits it into segments.
func Split(relPath string) []string {
	cleaned := strings.TrimPrefix(path.Clean("/"+relPath), "/")
	return strings.Split(cleaned, "/")
}

// Name strips the icon extension from a file name.
func Name(filename string) string {
	ext := path.Ext(filename)
	if !strings.EqualFold(ext, types.IconExtension) {
		return filename
	}
	if name := filename[:len(filename)-len(ext)]; name != "" {
		return name
	}
	return filename
}
