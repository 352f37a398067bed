package display

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TextRenderer provides minimal text output for iconlib commands
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{
		writer: w,
	}
}

// Render writes one of the display result types as plain text. It reports
// false for types it does not know.
func (r *TextRenderer) Render(result interface{}) (bool, error) {
	switch v := result.(type) {
	case *BuildSummary:
		return true, r.renderBuild(v)
	case *CollectionList:
		return true, r.renderList(v)
	case *StatsResult:
		return true, r.renderStats(v)
	case *SearchResult:
		return true, r.renderSearch(v)
	case *ClassifyResult:
		return true, r.renderClassify(v)
	default:
		return false, nil
	}
}

func (r *TextRenderer) renderBuild(b *BuildSummary) error {
	if _, err := fmt.Fprintf(r.writer, "built %d icons from %d files in %s\n", b.Icons, b.Files, b.Duration.Round(time.Millisecond)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.writer, "normalized: %d\nmanifest: %s\n", b.Normalized, b.Manifest); err != nil {
		return err
	}
	for _, c := range b.Collections {
		if _, err := fmt.Fprintf(r.writer, "%s\t%d\t%s\n", c.Name, c.Icons, c.File); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderList(l *CollectionList) error {
	if len(l.Collections) == 0 {
		_, err := fmt.Fprintln(r.writer, "No collections found")
		return err
	}
	for _, c := range l.Collections {
		if _, err := fmt.Fprintf(r.writer, "%s\t%s\t%d\n", c.Name, c.DisplayName, c.Icons); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderStats(s *StatsResult) error {
	for _, c := range s.Collections {
		if _, err := fmt.Fprintf(r.writer, "%s (%d icons)\n", c.Name, c.Icons); err != nil {
			return err
		}
		if err := r.renderCounts("styles", c.Styles); err != nil {
			return err
		}
		if err := r.renderCounts("categories", c.Categories); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderCounts(label string, counts map[string]int) error {
	parts := make([]string, 0, len(counts))
	for _, k := range SortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	_, err := fmt.Fprintf(r.writer, "  %s: %s\n", label, strings.Join(parts, " "))
	return err
}

func (r *TextRenderer) renderSearch(s *SearchResult) error {
	if len(s.Hits) == 0 {
		_, err := fmt.Fprintf(r.writer, "No icons match %q\n", s.Query)
		return err
	}
	for _, h := range s.Hits {
		if _, err := fmt.Fprintf(r.writer, "%s\t%s\t%s\t%s\n", h.Name, h.Collection, h.Style, h.Path); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderClassify(c *ClassifyResult) error {
	for _, e := range c.Entries {
		if _, err := fmt.Fprintf(r.writer, "%s\tname=%s collection=%s category=%s style=%s strategy=%s\n",
			e.Path, e.Name, e.Collection, e.Category, e.Style, e.Strategy); err != nil {
			return err
		}
	}
	return nil
}
