/*
Responsibilities
- Turn a heading fragment into an ID-safe token
- Keep anchors unique within one extraction

A Generator owns its collision table. Create one per extraction call and
drop it afterwards; never share one between goroutines or documents.
*/
package anchor

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"github.com/rohmanhakim/docs-toc/pkg/htmltext"
	"golang.org/x/text/unicode/norm"
)

type Generator struct {
	lowercase  bool
	hyphenate  bool
	transform  TransformFunc
	collisions map[string]int
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		transform:  Identity,
		collisions: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns the anchor for fragment. The first time a base anchor is
// seen it is returned bare; the second sighting returns "base-2", the third
// "base-3" and so on. A suffixed anchor is recorded as well, and a suffix
// already handed out (a heading literally named "base-2") is skipped.
func (g *Generator) Next(fragment string) string {
	anchor := Normalize(fragment, g.lowercase, g.hyphenate)

	count, seen := g.collisions[anchor]
	if !seen {
		g.collisions[anchor] = 1
		return g.transform(anchor, fragment)
	}

	candidate := anchor
	for {
		count++
		candidate = anchor + "-" + strconv.Itoa(count)
		if _, taken := g.collisions[candidate]; !taken {
			break
		}
	}
	g.collisions[anchor] = count
	g.collisions[candidate] = 1

	return g.transform(candidate, fragment)
}

// Seen returns the last suffix number used for base, 1 when only the bare
// anchor was handed out and 0 when base was never seen.
func (g *Generator) Seen(base string) int {
	return g.collisions[base]
}

// Normalize computes the base anchor for a heading fragment without touching
// any collision state. Calling it twice on the same input always yields the
// same string.
func Normalize(fragment string, lowercase bool, hyphenate bool) string {
	if fragment == "" {
		return ""
	}

	text := strings.TrimSpace(htmltext.StripTags(fragment))
	text = transliterate(text)
	text = collapseNewlines.Replace(text)
	text = htmltext.EscapeAttr(text)
	if lowercase {
		text = strings.ToLower(text)
	}

	separator := separatorUnderscore
	if hyphenate {
		separator = separatorHyphen
	}
	text = strings.NewReplacer(ideographicSpace, separator, " ", separator).Replace(text)

	return strings.TrimRight(text, "-_")
}

var collapseNewlines = strings.NewReplacer("\r\n", " ", "\n\r", " ", "\r", " ", "\n", " ")

// transliterate folds accented Latin letters to ASCII. Letters from other
// scripts are left alone so that, for example, Japanese headings keep their
// text.
func transliterate(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	prevLatin := false
	for _, r := range s {
		switch {
		case r <= unicode.MaxASCII:
			b.WriteRune(r)
			prevLatin = unicode.IsLetter(r)
		case unicode.Is(unicode.Mn, r) && prevLatin:
			// leftover combining mark on a Latin base with no precomposed form
		case unicode.Is(unicode.Latin, r):
			b.WriteString(unidecode.Unidecode(string(r)))
			prevLatin = true
		default:
			b.WriteRune(r)
			prevLatin = false
		}
	}
	return b.String()
}
