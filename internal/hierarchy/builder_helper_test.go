package hierarchy_test

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rohmanhakim/docs-toc/internal/heading"
)

// headingsAt builds anchored headings from levels; texts are derived from
// the position so every anchor is unique.
func headingsAt(levels ...int) []heading.Heading {
	out := make([]heading.Heading, 0, len(levels))
	for i, level := range levels {
		text := fmt.Sprintf("H%d-%d", level, i)
		out = append(out, newHeading(level, text, text))
	}
	return out
}

func newHeading(level int, text string, anchor string) heading.Heading {
	openTag := fmt.Sprintf("<h%d>", level)
	closeTag := fmt.Sprintf("</h%d>", level)
	return heading.Heading{
		Match: heading.Match{
			Fragment: openTag + text + closeTag,
			Level:    level,
			OpenTag:  openTag,
			CloseTag: closeTag,
		},
		Anchor: anchor,
	}
}

var listTagPattern = regexp.MustCompile(`</?(ul|li)\b[^>]*>`)

// listShape returns the maximum <ul> nesting depth and whether every <ul>
// and <li> is closed in the right order.
func listShape(markup string) (maxDepth int, balanced bool) {
	var stack []string
	depth := 0
	for _, tag := range listTagPattern.FindAllStringSubmatch(markup, -1) {
		name := tag[1]
		if !strings.HasPrefix(tag[0], "</") {
			stack = append(stack, name)
			if name == "ul" {
				depth++
				maxDepth = max(maxDepth, depth)
			}
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != name {
			return maxDepth, false
		}
		stack = stack[:len(stack)-1]
		if name == "ul" {
			depth--
		}
	}
	return maxDepth, len(stack) == 0
}
