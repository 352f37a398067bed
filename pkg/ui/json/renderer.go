// Package json writes command results as indented JSON documents, one per
// call, for scripts and CI.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

// Renderer encodes results with the same field names the display types
// declare. HTML escaping is off so SVG markup stays readable.
type Renderer struct {
	enc *json.Encoder
}

type errorPayload struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// New creates a JSON renderer writing to w.
func New(w io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &Renderer{enc: enc}, nil
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError includes the error code and details of structured errors.
func (r *Renderer) RenderError(err error) error {
	p := errorPayload{Error: err.Error(), Details: errors.GetErrorDetails(err)}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		p.Code = string(code)
	}
	return r.enc.Encode(p)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messagePayload{Message: msg})
}
