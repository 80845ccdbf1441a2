/*
Responsibilities
- Parse a rewritten page
- Report duplicate id attributes
- Report table of contents links whose target id does not exist
- Report headings whose anchor did not make it into the page
*/
package verify

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/docs-toc/internal/heading"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

const tocLinkSelector = `#toc_container a[href^="#"]`

type Verifier struct {
	metadataSink metadata.MetadataSink
}

func NewVerifier(metadataSink metadata.MetadataSink) Verifier {
	return Verifier{
		metadataSink: metadataSink,
	}
}

// Verify checks the page and records a failure when problems are found.
// The returned error is nil when the page is clean.
func (v Verifier) Verify(sourcePath string, rewritten string, headings []heading.Heading) (Report, failure.ClassifiedError) {
	report, err := Check(rewritten, headings)
	if err == nil && !report.OK() {
		err = &VerifyError{
			Message:   report.String(),
			Retryable: true,
			Cause:     ErrCauseProblems,
		}
	}
	if err != nil {
		v.metadataSink.RecordError(
			time.Now(),
			"verify",
			"Verifier.Verify",
			mapVerifyErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrSourcePath, sourcePath),
			},
		)
		return report, err
	}
	return report, nil
}

// Check parses rewritten and lists every problem in document order: first
// duplicate ids, then dangling links, then missing anchors.
func Check(rewritten string, headings []heading.Heading) (Report, *VerifyError) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rewritten))
	if err != nil {
		return Report{}, &VerifyError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseParseFailure,
		}
	}

	var report Report

	counts := make(map[string]int)
	var order []string
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	})
	for _, id := range order {
		if counts[id] > 1 {
			report.Problems = append(report.Problems, Problem{Kind: ProblemDuplicateID, ID: id})
		}
	}

	doc.Find(tocLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		target := strings.TrimPrefix(href, "#")
		if counts[target] == 0 {
			report.Problems = append(report.Problems, Problem{Kind: ProblemDanglingLink, ID: target})
		}
	})

	for _, h := range headings {
		anchor := unescapeAttr(h.Anchor)
		if counts[anchor] == 0 {
			report.Problems = append(report.Problems, Problem{Kind: ProblemMissingAnchor, ID: anchor})
		}
	}

	return report, nil
}

// anchors are stored attribute-escaped; the parsed DOM holds them decoded
var unescapeAttr = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
).Replace
