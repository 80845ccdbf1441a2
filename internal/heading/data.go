package heading

import (
	"strings"

	"github.com/rohmanhakim/docs-toc/pkg/htmltext"
)

const (
	MinLevel = 1
	MaxLevel = 6
)

// Match is one heading element located in the source content.
// Fragment runs from the opening tag through the closing tag exactly as it
// appears in the source; OpenTag and CloseTag are its first and last tags.
type Match struct {
	Fragment string
	Level    int
	OpenTag  string
	CloseTag string
	// byte offset of Fragment in the scanned content
	Offset int
}

// Inner returns the markup between the opening and closing tag.
func (m Match) Inner() string {
	return m.Fragment[len(m.OpenTag) : len(m.Fragment)-len(m.CloseTag)]
}

// Text returns the visible heading text with markup removed and surrounding
// whitespace trimmed.
func (m Match) Text() string {
	return strings.TrimSpace(htmltext.StripTags(m.Fragment))
}

// Anchored returns the fragment with an id-bearing span inserted right after
// the opening tag and right before the closing tag. Attributes and inner
// markup are kept verbatim.
func (m Match) Anchored(anchor string) string {
	var b strings.Builder
	b.Grow(len(m.Fragment) + len(anchor) + 20)
	b.WriteString(m.OpenTag)
	b.WriteString(`<span id="`)
	b.WriteString(anchor)
	b.WriteString(`">`)
	b.WriteString(m.Inner())
	b.WriteString(`</span>`)
	b.WriteString(m.CloseTag)
	return b.String()
}

// Unwrap reverses Anchored: it removes the span that Anchored added around
// the inner markup of anchored. It returns anchored unchanged when the
// wrapper is not found.
func Unwrap(anchored string, openTag string, closeTag string) string {
	if !strings.HasPrefix(anchored, openTag) || !strings.HasSuffix(anchored, closeTag) {
		return anchored
	}
	body := anchored[len(openTag) : len(anchored)-len(closeTag)]
	if !strings.HasPrefix(body, `<span id="`) || !strings.HasSuffix(body, `</span>`) {
		return anchored
	}
	end := strings.Index(body, `">`)
	if end < 0 {
		return anchored
	}
	inner := body[end+len(`">`) : len(body)-len(`</span>`)]
	return openTag + inner + closeTag
}

// Heading is a surviving match together with the anchor assigned to it.
type Heading struct {
	Match  Match
	Anchor string
}

func (h Heading) Level() int {
	return h.Match.Level
}

// Text is the link label used in the table of contents.
func (h Heading) Text() string {
	return h.Match.Text()
}

// Replacement is the anchored form of the heading fragment.
func (h Heading) Replacement() string {
	return h.Match.Anchored(h.Anchor)
}
