package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/ui/styles"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styled applies a named style only when stdout is a terminal, so piped
// help text stays free of escape codes.
func styled(name string) func(string) string {
	return func(s string) string {
		if !isTerminal(os.Stdout) {
			return s
		}
		return styles.Render(name, s)
	}
}

// initTemplateFormatting registers the help template functions.
func initTemplateFormatting() {
	header := styled("Header")
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": func(s string) string { return header(strings.ToUpper(s)) },
		"group":   styled("Bold"),
	})
}
