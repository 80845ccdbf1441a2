/*
Responsibilities
- Find the headings that qualify for a table of contents
- Assign each one a unique anchor
- Produce the list markup and the find/replace pairs for the content

Flow
scan -> level filter -> drop blank -> anchor -> flat list or hierarchy

An Extractor holds only immutable configuration. Anchor collision state is
created inside Extract, so one Extractor may serve concurrent callers.
*/
package toc

import (
	"strconv"
	"strings"

	"github.com/rohmanhakim/docs-toc/internal/anchor"
	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/heading"
	"github.com/rohmanhakim/docs-toc/internal/hierarchy"
	"github.com/rohmanhakim/docs-toc/internal/splice"
	"github.com/rohmanhakim/docs-toc/pkg/set"
)

type Extractor struct {
	levels       set.Set[int]
	hierarchical bool
	numbered     bool
	lowercase    bool
	hyphenate    bool
	scanner      heading.Scanner
	transform    anchor.TransformFunc
}

type Option func(*Extractor)

// WithScanner overrides the scanner selected by the configuration.
func WithScanner(scanner heading.Scanner) Option {
	return func(e *Extractor) {
		if scanner != nil {
			e.scanner = scanner
		}
	}
}

// WithTransform installs an anchor override hook.
func WithTransform(fn anchor.TransformFunc) Option {
	return func(e *Extractor) {
		e.transform = fn
	}
}

func NewExtractor(cfg config.Config, opts ...Option) Extractor {
	e := Extractor{
		levels:       cfg.Levels(),
		hierarchical: cfg.Hierarchical(),
		numbered:     cfg.Numbered(),
		lowercase:    cfg.Lowercase(),
		hyphenate:    cfg.Hyphenate(),
		scanner:      scannerFor(cfg.Scanner()),
		transform:    anchor.Identity,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func scannerFor(kind config.ScannerKind) heading.Scanner {
	if kind == config.ScannerToken {
		return heading.TokenScanner{}
	}
	return heading.PatternScanner{}
}

func (e Extractor) Extract(content string) Result {
	if content == "" {
		return Result{}
	}

	matches := e.scanner.Scan(content)
	matches = heading.FilterLevels(matches, e.levels)
	matches = heading.DropBlank(matches)
	if len(matches) == 0 {
		return Result{}
	}

	generator := anchor.NewGenerator(
		anchor.WithLowercase(e.lowercase),
		anchor.WithHyphenate(e.hyphenate),
		anchor.WithTransform(e.transform),
	)

	headings := make([]Heading, len(matches))
	pairs := make([]splice.Pair, len(matches))
	for i, m := range matches {
		h := Heading{Match: m, Anchor: generator.Next(m.Fragment)}
		headings[i] = h
		pairs[i] = splice.Pair{Find: m.Fragment, Replace: h.Replacement()}
	}

	var items string
	if e.hierarchical {
		items = hierarchy.NewBuilder(e.levels).Build(headings)
	} else {
		items = e.flatItems(headings)
	}

	return Result{
		Items:    items,
		Headings: headings,
		Pairs:    pairs,
	}
}

func (e Extractor) flatItems(headings []Heading) string {
	var out strings.Builder
	for i, h := range headings {
		out.WriteString(`<li class="nav-item"><a class="nav-link" href="#`)
		out.WriteString(h.Anchor)
		out.WriteString(`">`)
		if e.numbered {
			out.WriteString(`<span class="toc-number">`)
			out.WriteString(strconv.Itoa(i + 1))
			out.WriteString(`</span>`)
		}
		out.WriteString(`<span class="toc-text">`)
		out.WriteString(h.Text())
		out.WriteString(`</span></a></li>`)
	}
	return out.String()
}
