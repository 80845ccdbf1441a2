/*
Responsibilities
- Turn table of contents list items into a Markdown list

Links keep their #anchor targets. Item numbers from flat numbered lists are
dropped because a Markdown list carries its own order.
*/
package mdexport

import (
	"errors"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
	"golang.org/x/net/html"
)

type Exporter struct {
	metadataSink metadata.MetadataSink
}

func NewExporter(metadataSink metadata.MetadataSink) Exporter {
	return Exporter{
		metadataSink: metadataSink,
	}
}

func (e Exporter) Convert(items string) (string, failure.ClassifiedError) {
	md, err := Convert(items)
	if err != nil {
		var exportErr *ExportError
		errors.As(err, &exportErr)
		e.metadataSink.RecordError(
			time.Now(),
			"mdexport",
			"Exporter.Convert",
			mapExportErrorToMetadataCause(exportErr),
			err.Error(),
			[]metadata.Attribute{},
		)
		return "", exportErr
	}
	return md, nil
}

// Convert renders list items (the content of the outer <ul>) as Markdown.
// Empty input gives an empty string.
func Convert(items string) (string, error) {
	if strings.TrimSpace(items) == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader("<ul>" + items + "</ul>"))
	if err != nil {
		return "", &ExportError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}

	goquery.NewDocumentFromNode(doc).Find("span.toc-number").Remove()

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	markdown, err := conv.ConvertNode(doc)
	if err != nil {
		return "", &ExportError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseConversionFailure,
		}
	}

	return strings.TrimSpace(string(markdown)), nil
}
