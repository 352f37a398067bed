// Package normalize rewrites the theme attribute on an icon's root <svg>
// element so consuming pages can recolor it through CSS color inheritance.
//
// Only the root start tag is parsed (with etree) and replaced; every byte
// before and after it is kept as is. The attribute chosen is:
//
//   - stroke, when the root has fill="none" and a stroke other than "none"
//     (line icons drawn with strokes);
//   - nothing, when the root has fill="none" and no usable stroke;
//   - fill otherwise, added when missing.
package normalize

import (
	"strings"

	"github.com/beevik/etree"
)

// DefaultToken is the value written into the theme attribute.
const DefaultToken = "currentColor"

// Result describes one normalization.
type Result struct {
	Content string
	// Attribute is "fill" or "stroke" when Changed.
	Attribute string
	Changed   bool
}

// Normalizer rewrites root theme attributes to a fixed token.
type Normalizer struct {
	token string
}

// New returns a Normalizer writing token; an empty token means DefaultToken.
func New(token string) *Normalizer {
	if token == "" {
		token = DefaultToken
	}
	return &Normalizer{token: token}
}

// Token returns the value written by the normalizer.
func (n *Normalizer) Token() string {
	return n.token
}

// Normalize rewrites the root start tag of content. Documents without a
// recognisable <svg> root, or whose root tag does not parse, come back
// unchanged.
func (n *Normalizer) Normalize(content string) Result {
	unchanged := Result{Content: content}

	start, end, ok := findRootStartTag(content)
	if !ok {
		return unchanged
	}
	tag := content[start:end]
	selfClosing := strings.HasSuffix(strings.TrimSpace(strings.TrimSuffix(tag, ">")), "/")

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	src := tag
	if !selfClosing {
		src += "</svg>"
	}
	if err := doc.ReadFromString(src); err != nil {
		return unchanged
	}
	root := doc.Root()
	if root == nil {
		return unchanged
	}

	attr := themeAttribute(root)
	if attr == "" {
		return unchanged
	}
	if current := root.SelectAttr(attr); current != nil && current.Value == n.token {
		return unchanged
	}
	root.CreateAttr(attr, n.token)

	doc.WriteSettings.CanonicalEndTags = true
	rendered, err := doc.WriteToString()
	if err != nil {
		return unchanged
	}
	rendered = strings.TrimSuffix(rendered, "</svg>")
	if selfClosing {
		rendered = strings.TrimSuffix(rendered, ">") + "/>"
	}

	return Result{
		Content:   content[:start] + rendered + content[end:],
		Attribute: attr,
		Changed:   true,
	}
}

func themeAttribute(root *etree.Element) string {
	if strings.TrimSpace(root.SelectAttrValue("fill", "")) != "none" {
		return "fill"
	}
	stroke := root.SelectAttr("stroke")
	if stroke != nil && strings.TrimSpace(stroke.Value) != "none" {
		return "stroke"
	}
	return ""
}
