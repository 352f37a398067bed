// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
	"github.com/arthur-debert/iconlib/pkg/ui/styles"
)

// Renderer provides rich terminal output: pterm tables with lipgloss styled
// cells.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.BuildSummary:
		return r.renderBuild(v)
	case *display.CollectionList:
		return r.renderList(v)
	case *display.StatsResult:
		return r.renderStats(v)
	case *display.SearchResult:
		return r.renderSearch(v)
	case *display.ClassifyResult:
		return r.renderClassify(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	line := styles.Render("Error", "Error:") + " " + err.Error()
	if details := errors.GetErrorDetails(err); details != nil {
		if p, ok := details["path"].(string); ok {
			line += "\n  " + styles.Render("FilePath", p)
		}
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderBuild(b *display.BuildSummary) error {
	header := styles.Render("Success", "Built") + " " +
		styles.Render("Bold", strconv.Itoa(b.Icons)) + " icons in " +
		styles.Render("Muted", b.Duration.Round(time.Millisecond).String())
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	data := pterm.TableData{{"Collection", "Icons", "Styles", "File"}}
	for _, c := range b.Collections {
		data = append(data, []string{
			styles.Render("Collection", c.DisplayName),
			strconv.Itoa(c.Icons),
			styles.Render("Style", strings.Join(display.SortedKeys(c.Styles), ", ")),
			styles.Render("FilePath", c.File),
		})
	}
	if err := r.table(data); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.output, "%s %s (%d normalized)\n",
		styles.Render("Muted", "manifest"), styles.Render("FilePath", b.Manifest), b.Normalized)
	return err
}

func (r *Renderer) renderList(l *display.CollectionList) error {
	if len(l.Collections) == 0 {
		_, err := fmt.Fprintln(r.output, styles.Render("Muted", "No collections found"))
		return err
	}
	data := pterm.TableData{{"Collection", "Id", "Icons"}}
	for _, c := range l.Collections {
		data = append(data, []string{
			styles.Render("Collection", c.DisplayName),
			styles.Render("Muted", c.Name),
			strconv.Itoa(c.Icons),
		})
	}
	return r.table(data)
}

func (r *Renderer) renderStats(s *display.StatsResult) error {
	for _, c := range s.Collections {
		title := styles.Render("Collection", c.DisplayName) + " " +
			styles.Render("Muted", fmt.Sprintf("(%d icons)", c.Icons))
		if _, err := fmt.Fprintln(r.output, title); err != nil {
			return err
		}

		data := pterm.TableData{{"Kind", "Name", "Icons"}}
		for _, k := range display.SortedKeys(c.Styles) {
			data = append(data, []string{"style", styles.Render("Style", k), strconv.Itoa(c.Styles[k])})
		}
		for _, k := range display.SortedKeys(c.Categories) {
			data = append(data, []string{"category", styles.Render("Category", k), strconv.Itoa(c.Categories[k])})
		}
		if err := r.table(data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderSearch(s *display.SearchResult) error {
	if len(s.Hits) == 0 {
		line := fmt.Sprintf("No icons match %q", s.Query)
		if len(s.Styles) > 0 {
			line += "; styles: " + strings.Join(s.Styles, ", ")
		}
		_, err := fmt.Fprintln(r.output, styles.Render("Muted", line))
		return err
	}
	data := pterm.TableData{{"Name", "Collection", "Category", "Style", "Path"}}
	for _, h := range s.Hits {
		data = append(data, []string{
			styles.Render("Bold", h.Name),
			styles.Render("Collection", h.Collection),
			styles.Render("Category", h.Category),
			styles.Render("Style", h.Style),
			styles.Render("FilePath", h.Path),
		})
	}
	return r.table(data)
}

func (r *Renderer) renderClassify(c *display.ClassifyResult) error {
	data := pterm.TableData{{"Path", "Name", "Collection", "Category", "Style", "Strategy"}}
	for _, e := range c.Entries {
		data = append(data, []string{
			styles.Render("FilePath", e.Path),
			styles.Render("Bold", e.Name),
			styles.Render("Collection", e.Collection),
			styles.Render("Category", e.Category),
			styles.Render("Style", e.Style),
			styles.Render("Muted", e.Strategy),
		})
	}
	return r.table(data)
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}
