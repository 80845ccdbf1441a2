// Package htmltext holds the small text helpers shared by the heading
// scanners and the anchor generator. They work on raw markup strings and
// never build a DOM.
package htmltext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// comments first so that a '>' inside a comment does not end a tag early
	tagPattern    = regexp.MustCompile(`(?s)<!--.*?-->|</?[a-zA-Z!?][^>]*>`)
	entityPattern = regexp.MustCompile(`^&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)
)

// StripTags removes every tag and HTML comment from s, leaving the visible
// text untouched. Entities are not decoded.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return tagPattern.ReplaceAllString(s, "")
}

// IsBlank reports whether the markup has no visible text.
func IsBlank(s string) bool {
	return strings.TrimSpace(StripTags(s)) == ""
}

// EscapeAttr encodes s for use inside a double or single quoted attribute
// value. Existing character references are kept as they are so that an
// already encoded "&amp;" does not become "&amp;amp;". Invalid UTF-8 yields
// an empty string.
func EscapeAttr(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if ref := entityPattern.FindString(s[i:]); ref != "" {
				b.WriteString(ref)
				i += len(ref) - 1
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#039;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
