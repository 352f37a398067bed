// Package text writes results as plain, tab separated lines that are easy to
// pipe into cut, awk or grep.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

// Renderer is the plain text renderer.
type Renderer struct {
	w     io.Writer
	plain *display.TextRenderer
}

// New creates a text renderer writing to w.
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{w: w, plain: display.NewTextRenderer(w)}, nil
}

// RenderResult falls back to %+v for types the display package does not know.
func (r *Renderer) RenderResult(result interface{}) error {
	if handled, err := r.plain.Render(result); handled || err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, "%+v\n", result)
	return err
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "Error: %v\n", err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}
