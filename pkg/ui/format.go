package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

// Format selects a renderer.
type Format int

const (
	// FormatAuto picks term or text from the output stream.
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// formatNames holds the canonical name first, then accepted aliases.
var formatNames = map[Format][]string{
	FormatAuto:     {"auto"},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatJSON:     {"json"},
}

// FormatNames lists the canonical format names, for flag help and completion.
func FormatNames() []string {
	return []string{"auto", "term", "text", "json"}
}

func (f Format) String() string {
	if names, ok := formatNames[f]; ok {
		return names[0]
	}
	return "unknown"
}

// ParseFormat accepts a canonical name or alias, case-insensitively. An
// empty string is auto.
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	if want == "" {
		return FormatAuto, nil
	}
	for f, names := range formatNames {
		for _, name := range names {
			if name == want {
				return f, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want %s)", s, strings.Join(FormatNames(), ", ")).
		WithDetail("format", s)
}

// DetectFormat resolves auto for the given stream. NO_COLOR, pipes and
// colorless terminals get plain text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
