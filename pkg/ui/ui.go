// Package ui renders command results as rich terminal tables, plain text or
// JSON. Commands build one of the pkg/ui/display result types and hand it to
// the Renderer picked by --format.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/ui/json"
	"github.com/arthur-debert/iconlib/pkg/ui/terminal"
	"github.com/arthur-debert/iconlib/pkg/ui/text"
)

// Renderer writes results, errors and short messages in one format.
type Renderer interface {
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

var constructors = map[Format]func(io.Writer) (Renderer, error){
	FormatTerminal: func(w io.Writer) (Renderer, error) { return terminal.New(w) },
	FormatText:     func(w io.Writer) (Renderer, error) { return text.New(w) },
	FormatJSON:     func(w io.Writer) (Renderer, error) { return json.New(w) },
}

// NewRenderer returns the renderer for format. Auto resolves against output
// when it is a file and falls back to the terminal renderer otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}
	newFn, ok := constructors[format]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
	return newFn(output)
}
