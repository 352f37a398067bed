package normalize

import "strings"

const bom = "\ufeff"

// findRootStartTag locates the root <svg ...> start tag, skipping a BOM,
// whitespace, processing instructions, comments and a DOCTYPE. end is the
// index just past the closing '>'.
func findRootStartTag(s string) (start, end int, ok bool) {
	i := 0
	if strings.HasPrefix(s, bom) {
		i = len(bom)
	}

	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "<?"):
			j := strings.Index(rest, "?>")
			if j < 0 {
				return 0, 0, false
			}
			i += j + 2
		case strings.HasPrefix(rest, "<!--"):
			j := strings.Index(rest[4:], "-->")
			if j < 0 {
				return 0, 0, false
			}
			i += 4 + j + 3
		case strings.HasPrefix(rest, "<!"):
			j := skipDeclaration(rest)
			if j < 0 {
				return 0, 0, false
			}
			i += j
		default:
			return startTag(s, i)
		}
	}
}

// skipDeclaration returns the length of a <!...> declaration including any
// [...] internal subset, or -1 when it is not terminated.
func skipDeclaration(s string) int {
	depth := 0
	var quote byte
	for i := 2; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == '>' && depth <= 0:
			return i + 1
		}
	}
	return -1
}

func startTag(s string, i int) (int, int, bool) {
	const open = "<svg"
	if !strings.HasPrefix(s[i:], open) {
		return 0, 0, false
	}
	j := i + len(open)
	if j >= len(s) || !(isSpace(s[j]) || s[j] == '>' || s[j] == '/') {
		return 0, 0, false
	}

	var quote byte
	for ; j < len(s); j++ {
		c := s[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i, j + 1, true
		}
	}
	return 0, 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
