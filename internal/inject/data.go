package inject

import "github.com/rohmanhakim/docs-toc/internal/toc"

// Marker is the placeholder a page uses to choose where the table of
// contents goes.
const Marker = "<!--TOC-->"

type Output struct {
	// Content is the page with anchored headings and, when inserted, the
	// container.
	Content string
	// Container is the inserted table of contents block. Empty when none was
	// inserted.
	Container string
	Result    toc.Result
}

func (o Output) Inserted() bool {
	return o.Container != ""
}
