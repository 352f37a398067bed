package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a collection id into a human readable title:
// "font-awesome" becomes "Font Awesome".
func DisplayName(collection string) string {
	words := strings.FieldsFunc(collection, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return collection
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
