// Package styles defines the visual styling for iconlib's terminal output.
//
// Styles have semantic names ("Collection", "FilePath", "Error") and use
// adaptive colors that follow the terminal's light or dark theme. They are
// declared in the embedded styles.yaml.
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

// Names lists the styles the renderers rely on.
var Names = []string{
	"Header", "Collection", "Style", "Category",
	"FilePath", "Muted", "Success", "Error", "Bold",
}

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Foreground string `yaml:"foreground"`
	Align      string `yaml:"align"`
}

type sheet struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

var aligns = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		StyleRegistry = make(map[string]lipgloss.Style)
	}
}

// LoadStylesFromData replaces the registry with the styles declared in data.
// The registry is left untouched on error.
func LoadStylesFromData(data []byte) error {
	var s sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid style sheet")
	}

	registry := make(map[string]lipgloss.Style, len(s.Styles))
	for name, def := range s.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if def.Foreground != "" {
			c, ok := s.Colors[def.Foreground]
			if !ok {
				return errors.Newf(errors.ErrConfigParse, "style %s uses undefined color %q", name, def.Foreground).
					WithDetail("style", name)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		if pos, ok := aligns[def.Align]; ok {
			style = style.Align(pos)
		}
		registry[name] = style
	}
	StyleRegistry = registry
	return nil
}

// GetStyle returns the named style, or an empty style for unknown names.
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text.
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}
