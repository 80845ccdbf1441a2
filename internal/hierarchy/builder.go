/*
Responsibilities
- Turn an ordered heading sequence into nested list markup
- Track heading depth across jumps of any size, up or down

The builder is a single pass over the sequence. The shallowest level in the
sequence is the baseline; every level below it adds one nested list scope,
including levels that no heading actually uses (h2 followed by h5 opens
three scopes).

The returned markup is the content of the outermost list. Callers wrap it
in their own <ul>.
*/
package hierarchy

import (
	"strings"

	"github.com/rohmanhakim/docs-toc/internal/heading"
	"github.com/rohmanhakim/docs-toc/pkg/set"
)

const (
	openItem   = `<li class="nav-item">`
	closeItem  = `</li>`
	openScope  = `<ul class="nav ml-3">`
	closeScope = `</ul>`
)

type Builder struct {
	levels set.Set[int]
}

// NewBuilder returns a builder that emits links only for headings whose
// level is in levels. The sequence handed to Build is normally filtered
// already; the check here is kept so that a caller passing an unfiltered
// sequence still gets the configured links only.
func NewBuilder(levels set.Set[int]) Builder {
	return Builder{levels: levels.Clone()}
}

func (b Builder) Build(headings []heading.Heading) string {
	if len(headings) == 0 {
		return ""
	}

	baseline := heading.MaxLevel
	for _, h := range headings {
		baseline = min(baseline, h.Level())
	}

	var out strings.Builder
	depth := baseline
	// every depth from baseline to depth-1 holds an open item with an open
	// scope inside it; itemOpen tells whether depth itself holds one
	itemOpen := false

	for _, h := range headings {
		level := h.Level()

		for ; depth > level; depth-- {
			out.WriteString(closeItem)
			out.WriteString(closeScope)
			itemOpen = true
		}

		switch {
		case level == depth:
			if itemOpen {
				out.WriteString(closeItem)
			}
			out.WriteString(openItem)
		case level > depth:
			// a heading deeper than anything open hangs under a placeholder
			// item at the current depth
			if !itemOpen {
				out.WriteString(openItem)
			}
			for ; depth < level; depth++ {
				out.WriteString(openScope)
				out.WriteString(openItem)
			}
		}
		itemOpen = true

		if b.levels.Contains(level) {
			writeLink(&out, h)
		}
	}

	for ; depth > baseline; depth-- {
		out.WriteString(closeItem)
		out.WriteString(closeScope)
	}
	if itemOpen {
		out.WriteString(closeItem)
	}

	return out.String()
}

func writeLink(out *strings.Builder, h heading.Heading) {
	out.WriteString(`<a class="nav-link" href="#`)
	out.WriteString(h.Anchor)
	out.WriteString(`">`)
	out.WriteString(h.Text())
	out.WriteString(`</a>`)
}
