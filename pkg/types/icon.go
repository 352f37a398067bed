package types

import (
	"sort"
	"time"
)

// Sentinel values substituted when a layout has no segment for an attribute.
const (
	DefaultCategory   = "general"
	DefaultStyle      = "default"
	DefaultCollection = "default"
)

// IconExtension is the only file extension the walker picks up.
const IconExtension = ".svg"

// IconFile is a file found by the walker.
type IconFile struct {
	// AbsPath is the path handed to the filesystem for reading.
	AbsPath string
	// RelPath is slash separated and relative to the scan root.
	RelPath string
}

// IconRecord is one icon in a collection output file.
type IconRecord struct {
	Name       string `json:"name"`
	Collection string `json:"collection"`
	Category   string `json:"category"`
	Style      string `json:"style"`
	Path       string `json:"path"`
	Content    string `json:"content"`
}

// Manifest lists the collections with an output file, sorted.
type Manifest struct {
	Collections []string `json:"collections"`
}

// CollectionSummary counts the records of one collection.
type CollectionSummary struct {
	Name       string         `json:"name"`
	Icons      int            `json:"icons"`
	Styles     map[string]int `json:"styles"`
	Categories map[string]int `json:"categories"`
	File       string         `json:"file,omitempty"`
}

// BuildResult summarizes one pipeline run.
type BuildResult struct {
	InputDir    string              `json:"inputDir"`
	OutputDir   string              `json:"outputDir"`
	Files       int                 `json:"files"`
	Icons       int                 `json:"icons"`
	Normalized  int                 `json:"normalized"`
	Collections []CollectionSummary `json:"collections"`
	Manifest    string              `json:"manifest"`
	Duration    time.Duration       `json:"duration"`
}

// Summarize groups records by collection and counts styles and categories.
// Collections come back sorted by name.
func Summarize(records []IconRecord) []CollectionSummary {
	index := make(map[string]*CollectionSummary)
	var order []string
	for _, rec := range records {
		s, ok := index[rec.Collection]
		if !ok {
			s = &CollectionSummary{
				Name:       rec.Collection,
				Styles:     make(map[string]int),
				Categories: make(map[string]int),
			}
			index[rec.Collection] = s
			order = append(order, rec.Collection)
		}
		s.Icons++
		s.Styles[rec.Style]++
		s.Categories[rec.Category]++
	}

	sort.Strings(order)
	out := make([]CollectionSummary, 0, len(order))
	for _, name := range order {
		out = append(out, *index[name])
	}
	return out
}
