package source

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Document is one input page ready for extraction.
type Document struct {
	// Path as given by the caller
	Path string
	// Name is the file name without extension; output files are named after it
	Name string
	// Title is the page <title>, or Name when the page has none
	Title  string
	Format Format
	HTML   string
}
