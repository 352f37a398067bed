package display

import (
	"sort"
	"time"

	"github.com/arthur-debert/iconlib/pkg/search"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// BuildSummary is the result of the build command.
type BuildSummary struct {
	Input       string              `json:"input"`
	Output      string              `json:"output"`
	Manifest    string              `json:"manifest"`
	Files       int                 `json:"files"`
	Icons       int                 `json:"icons"`
	Normalized  int                 `json:"normalized"`
	Collections []CollectionSummary `json:"collections"`
	Duration    time.Duration       `json:"durationNs"`
}

// CollectionSummary is one collection row, with its display name and counts.
type CollectionSummary struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName"`
	File        string         `json:"file,omitempty"`
	Icons       int            `json:"icons"`
	Styles      map[string]int `json:"styles,omitempty"`
	Categories  map[string]int `json:"categories,omitempty"`
}

// CollectionList is the result of the list command.
type CollectionList struct {
	Output      string              `json:"output"`
	Collections []CollectionSummary `json:"collections"`
}

// StatsResult is the result of the stats command.
type StatsResult struct {
	Collections []CollectionSummary `json:"collections"`
}

// SearchResult is the result of the search command.
type SearchResult struct {
	Query string      `json:"query"`
	Hits  []SearchHit `json:"hits"`
	// Styles available in the searched collections, for refining the query.
	Styles []string `json:"styles,omitempty"`
}

// SearchHit is one icon found by a search.
type SearchHit struct {
	Name       string `json:"name"`
	Collection string `json:"collection"`
	Category   string `json:"category"`
	Style      string `json:"style"`
	Path       string `json:"path"`
	Matched    string `json:"matched,omitempty"`
	Distance   int    `json:"distance"`
}

// ClassifyResult is the result of the classify command.
type ClassifyResult struct {
	Entries []ClassifiedPath `json:"entries"`
}

// ClassifiedPath is the classification of one relative path.
type ClassifiedPath struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	Collection string `json:"collection"`
	Category   string `json:"category"`
	Style      string `json:"style"`
	Strategy   string `json:"strategy"`
}

// NewCollectionSummary converts a pipeline summary for display.
func NewCollectionSummary(s types.CollectionSummary) CollectionSummary {
	return CollectionSummary{
		Name:        s.Name,
		DisplayName: DisplayName(s.Name),
		File:        s.File,
		Icons:       s.Icons,
		Styles:      s.Styles,
		Categories:  s.Categories,
	}
}

// NewCollectionSummaries converts summaries, keeping their order.
func NewCollectionSummaries(in []types.CollectionSummary) []CollectionSummary {
	out := make([]CollectionSummary, 0, len(in))
	for _, s := range in {
		out = append(out, NewCollectionSummary(s))
	}
	return out
}

// NewBuildSummary converts a pipeline result for display.
func NewBuildSummary(res *types.BuildResult) *BuildSummary {
	return &BuildSummary{
		Input:       res.InputDir,
		Output:      res.OutputDir,
		Manifest:    res.Manifest,
		Files:       res.Files,
		Icons:       res.Icons,
		Normalized:  res.Normalized,
		Collections: NewCollectionSummaries(res.Collections),
		Duration:    res.Duration,
	}
}

// NewSearchResult converts search hits for display.
func NewSearchResult(query string, hits []search.Hit) *SearchResult {
	out := &SearchResult{Query: query, Hits: make([]SearchHit, 0, len(hits))}
	for _, h := range hits {
		out.Hits = append(out.Hits, SearchHit{
			Name:       h.Record.Name,
			Collection: h.Record.Collection,
			Category:   h.Record.Category,
			Style:      h.Record.Style,
			Path:       h.Record.Path,
			Matched:    string(h.Field),
			Distance:   h.Distance,
		})
	}
	return out
}

// SortedKeys returns the keys of a count map, sorted.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
