/*
Responsibilities
- Run the extractor over a page
- Splice anchored headings into the page
- Build the table of contents container and place it

Placement
- A <!--TOC--> marker in the page wins over the configured position
- Without a marker: before or after the first heading, top or bottom
- No qualifying headings: the marker is removed and the page is otherwise
  returned untouched
- Widget-only mode or too few headings: anchors only, no container
*/
package inject

import (
	"errors"
	"strings"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/internal/splice"
	"github.com/rohmanhakim/docs-toc/internal/toc"
)

// Extractor is the part of toc.Extractor the injector depends on.
type Extractor interface {
	Extract(content string) toc.Result
}

var _ Extractor = toc.Extractor{}

type Injector struct {
	extractor    Extractor
	metadataSink metadata.MetadataSink

	position    config.Position
	minHeadings int
	headingText string
	showHeading bool
	wrapping    config.Wrapping
	theme       config.Theme
	customClass string
	bullets     bool
	widgetOnly  bool
}

func NewInjector(
	cfg config.Config,
	extractor Extractor,
	metadataSink metadata.MetadataSink,
) Injector {
	return Injector{
		extractor:    extractor,
		metadataSink: metadataSink,
		position:     cfg.Position(),
		minHeadings:  cfg.MinHeadings(),
		headingText:  cfg.HeadingText(),
		showHeading:  cfg.ShowHeading(),
		wrapping:     cfg.Wrapping(),
		theme:        cfg.Theme(),
		customClass:  cfg.CustomClass(),
		bullets:      cfg.Bullets(),
		widgetOnly:   cfg.WidgetOnly(),
	}
}

func (i Injector) Apply(content string, pageTitle string) (Output, error) {
	result := i.extractor.Extract(content)
	if result.Empty() {
		return Output{
			Content: removeMarker(content),
			Result:  result,
		}, nil
	}

	find := result.Find()
	replace := result.Replace()

	if i.widgetOnly || len(result.Headings) < i.minHeadings {
		rewritten, err := i.splice(content, find, replace)
		if err != nil {
			return Output{}, err
		}
		return Output{
			Content: removeMarker(rewritten),
			Result:  result,
		}, nil
	}

	container := i.Container(result.Items, pageTitle)
	hasMarker := strings.Contains(content, Marker)

	if !hasMarker && len(replace) > 0 {
		switch i.position {
		case config.PositionAfterFirstHeading:
			replace[0] = replace[0] + container
		case config.PositionBeforeFirstHeading:
			replace[0] = container + replace[0]
		}
	}

	rewritten, err := i.splice(content, find, replace)
	if err != nil {
		return Output{}, err
	}

	switch {
	case hasMarker:
		rewritten = removeMarker(strings.Replace(rewritten, Marker, container, 1))
	case i.position == config.PositionTop:
		rewritten = container + rewritten
	case i.position == config.PositionBottom:
		rewritten = rewritten + container
	}

	return Output{
		Content:   rewritten,
		Container: container,
		Result:    result,
	}, nil
}

func (i Injector) splice(content string, find []string, replace []string) (string, error) {
	rewritten, err := splice.Strings(content, find, replace)
	if err != nil {
		var spliceErr *splice.SpliceError
		cause := metadata.CauseUnknown
		if errors.As(err, &spliceErr) {
			cause = splice.MapSpliceErrorToMetadataCause(spliceErr)
		}
		i.metadataSink.RecordError(
			time.Now(),
			"inject",
			"Injector.Apply",
			cause,
			err.Error(),
			nil,
		)
		return "", err
	}
	return rewritten, nil
}

// Container wraps list items in the table of contents block.
func (i Injector) Container(items string, pageTitle string) string {
	var b strings.Builder
	b.WriteString(`<div id="toc_container" class="`)
	b.WriteString(i.containerClasses())
	b.WriteString(`">`)
	if i.showHeading {
		title := strings.NewReplacer("%PAGE_TITLE%", pageTitle, "%PAGE_NAME%", pageTitle).Replace(i.headingText)
		b.WriteString(`<p class="toc_title">`)
		b.WriteString(escapeTitle.Replace(title))
		b.WriteString(`</p>`)
	}
	b.WriteString(`<ul class="toc_list">`)
	b.WriteString(items)
	b.WriteString("</ul></div>\n")
	return b.String()
}

var escapeTitle = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func (i Injector) containerClasses() string {
	var classes []string

	switch i.wrapping {
	case config.WrappingLeft:
		classes = append(classes, "toc_wrap_left")
	case config.WrappingRight:
		classes = append(classes, "toc_wrap_right")
	}

	switch i.theme {
	case config.ThemeLightBlue:
		classes = append(classes, "toc_light_blue")
	case config.ThemeWhite:
		classes = append(classes, "toc_white")
	case config.ThemeBlack:
		classes = append(classes, "toc_black")
	case config.ThemeTransparent:
		classes = append(classes, "toc_transparent")
	}

	if i.bullets {
		classes = append(classes, "have_bullets")
	} else {
		classes = append(classes, "no_bullets")
	}

	if i.customClass != "" {
		classes = append(classes, i.customClass)
	}

	return strings.Join(classes, " ")
}

func removeMarker(content string) string {
	return strings.ReplaceAll(content, Marker, "")
}
