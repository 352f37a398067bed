// Package search finds icons in generated collections the way the browser
// UI does: a fuzzy match over name and category, then exact filters on
// collection and style.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/iconlib/pkg/types"
)

// Field names the record field a query matched.
type Field string

const (
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldAll      Field = ""
)

// categoryPenalty ranks a category hit below a name hit of equal distance.
const categoryPenalty = 1

// Query selects icons. Empty fields do not filter.
type Query struct {
	Text       string
	Collection string
	Style      string
	// Limit caps the number of hits; zero or less means no cap.
	Limit int
}

// Hit is one matching icon.
type Hit struct {
	Record types.IconRecord
	// Distance is the number of unmatched characters; lower is better.
	Distance int
	Field    Field
}

// Search returns the records matching q, best first. Ties are broken by
// path so results are stable.
func Search(records []types.IconRecord, q Query) []Hit {
	text := strings.TrimSpace(q.Text)
	var hits []Hit

	for _, rec := range records {
		if q.Collection != "" && rec.Collection != q.Collection {
			continue
		}
		if q.Style != "" && rec.Style != q.Style {
			continue
		}
		if text == "" {
			hits = append(hits, Hit{Record: rec, Field: FieldAll})
			continue
		}
		if hit, ok := match(text, rec); ok {
			hits = append(hits, hit)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].Record.Path < hits[j].Record.Path
	})

	if q.Limit > 0 && len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}
	return hits
}

func match(text string, rec types.IconRecord) (Hit, bool) {
	best := Hit{Record: rec, Distance: -1}

	if d := fuzzy.RankMatchNormalizedFold(text, rec.Name); d >= 0 {
		best.Distance = d
		best.Field = FieldName
	}
	if d := fuzzy.RankMatchNormalizedFold(text, rec.Category); d >= 0 {
		d += categoryPenalty
		if best.Distance < 0 || d < best.Distance {
			best.Distance = d
			best.Field = FieldCategory
		}
	}
	return best, best.Distance >= 0
}

// Styles returns the distinct styles of records, sorted. The UI offers
// these as the style filter.
func Styles(records []types.IconRecord) []string {
	seen := make(map[string]struct{})
	var styles []string
	for _, rec := range records {
		if _, ok := seen[rec.Style]; ok {
			continue
		}
		seen[rec.Style] = struct{}{}
		styles = append(styles, rec.Style)
	}
	sort.Strings(styles)
	return styles
}
