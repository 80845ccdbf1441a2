package toc

import (
	"github.com/rohmanhakim/docs-toc/internal/heading"
	"github.com/rohmanhakim/docs-toc/internal/splice"
)

// Heading is a surviving heading with its assigned anchor.
type Heading = heading.Heading

// Result is the outcome of one extraction call.
type Result struct {
	// Items is the list markup without the enclosing <ul>. Empty when no
	// heading survived.
	Items    string
	Headings []Heading
	Pairs    []splice.Pair
}

// Empty reports that nothing qualified for a table of contents.
func (r Result) Empty() bool {
	return r.Items == ""
}

// Find returns the original heading fragments, index-aligned with Replace.
func (r Result) Find() []string {
	find := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		find[i] = p.Find
	}
	return find
}

// Replace returns the anchored heading fragments, index-aligned with Find.
func (r Result) Replace() []string {
	replace := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		replace[i] = p.Replace
	}
	return replace
}

// Apply splices the anchored headings into content. It can be called on
// any copy of the content the result was extracted from.
func (r Result) Apply(content string) string {
	return splice.Splice(content, r.Pairs)
}
