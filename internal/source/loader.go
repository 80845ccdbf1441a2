/*
Responsibilities
- Read an input page from disk
- Render Markdown input to HTML
- Work out the page title used in the container heading

Any extension other than .md and .markdown is read as HTML.
*/
package source

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
	"github.com/rohmanhakim/docs-toc/pkg/fileutil"
)

type Loader struct {
	metadataSink metadata.MetadataSink
}

func NewLoader(metadataSink metadata.MetadataSink) Loader {
	return Loader{
		metadataSink: metadataSink,
	}
}

func (l Loader) Load(path string) (Document, failure.ClassifiedError) {
	doc, err := Load(path)
	if err != nil {
		var sourceErr *SourceError
		errors.As(err, &sourceErr)
		l.metadataSink.RecordError(
			time.Now(),
			"source",
			"Loader.Load",
			mapSourceErrorToMetadataCause(sourceErr),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrSourcePath, path),
			},
		)
		return Document{}, sourceErr
	}
	return doc, nil
}

// Load reads path and returns its HTML form.
func Load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, &SourceError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      path,
		}
	}
	if !info.Mode().IsRegular() {
		return Document{}, &SourceError{
			Message:   "expected a regular file",
			Retryable: false,
			Cause:     ErrCauseNotAFile,
			Path:      path,
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &SourceError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      path,
		}
	}

	doc := Document{
		Path:   path,
		Name:   fileutil.StemName(path),
		Format: FormatOf(path),
	}
	if doc.Format == FormatMarkdown {
		doc.HTML = RenderMarkdown(raw)
	} else {
		doc.HTML = string(raw)
	}

	title, err := pageTitle(doc.HTML)
	if err != nil {
		return Document{}, &SourceError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailed,
			Path:      path,
		}
	}
	doc.Title = title
	if doc.Title == "" {
		doc.Title = doc.Name
	}

	return doc, nil
}

// FormatOf picks the input format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(fileutil.GetFileExtension(path)) {
	case "md", "markdown":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

// RenderMarkdown converts Markdown source to an HTML fragment. A new parser
// is created per call; gomarkdown parsers keep state and cannot be reused.
func RenderMarkdown(source []byte) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.ToHTML(source, p, renderer))
}

func pageTitle(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
