package classify

import "strings"

// SharpPrefix marks the sharp variant of a base style, e.g. "sharp-solid".
const SharpPrefix = "sharp-"

// Vocabulary is a set of base style names.
type Vocabulary map[string]struct{}

// NewVocabulary builds a vocabulary from style names, case-insensitively.
func NewVocabulary(styles ...string) Vocabulary {
	v := make(Vocabulary, len(styles))
	v.Add(styles...)
	return v
}

// Add inserts styles into the vocabulary.
func (v Vocabulary) Add(styles ...string) {
	for _, s := range styles {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			v[s] = struct{}{}
		}
	}
}

// IsStyle reports whether segment is a known style or its sharp variant.
func (v Vocabulary) IsStyle(segment string) bool {
	s := strings.ToLower(segment)
	if _, ok := v[s]; ok {
		return true
	}
	if base := strings.TrimPrefix(s, SharpPrefix); base != s {
		_, ok := v[base]
		return ok
	}
	return false
}

// Merge returns a new vocabulary holding both sets.
func (v Vocabulary) Merge(extra Vocabulary) Vocabulary {
	out := make(Vocabulary, len(v)+len(extra))
	for s := range v {
		out[s] = struct{}{}
	}
	for s := range extra {
		out[s] = struct{}{}
	}
	return out
}
