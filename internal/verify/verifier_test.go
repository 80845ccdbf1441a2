package verify_test

import (
	"testing"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/inject"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/internal/toc"
	"github.com/rohmanhakim/docs-toc/internal/verify"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorCountingSink struct {
	causes []metadata.ErrorCause
}

func (s *errorCountingSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	s.causes = append(s.causes, cause)
}

func (s *errorCountingSink) RecordExtraction(event metadata.ExtractionEvent) {}

func (s *errorCountingSink) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
}

func TestCheck_InjectedPageIsClean(t *testing.T) {
	cfg, err := config.WithDefault().WithMinHeadings(0).Build()
	require.NoError(t, err)
	injector := inject.NewInjector(cfg, toc.NewExtractor(cfg), &metadata.NoopSink{})
	content := `<h2>Overview</h2><p>a</p><h3>Q&A</h3><h2>Overview</h2><h4>"Quoted"</h4>`

	out, err := injector.Apply(content, "Page")
	require.NoError(t, err)

	report, verr := verify.Check(out.Content, out.Result.Headings)

	require.Nil(t, verr)
	assert.True(t, report.OK(), report.String())
}

func TestCheck_Problems(t *testing.T) {
	page := `<div id="toc_container"><ul class="toc_list">` +
		`<li><a href="#Intro">Intro</a></li>` +
		`<li><a href="#Gone">Gone</a></li>` +
		`<li><a href="https://example.com/#x">external</a></li>` +
		`</ul></div>` +
		`<h2><span id="Intro">Intro</span></h2>` +
		`<h2><span id="Intro">Intro</span></h2>`

	cfg, err := config.WithDefault().Build()
	require.NoError(t, err)
	result := toc.NewExtractor(cfg).Extract("<h2>Intro</h2><h2>Missing</h2>")

	report, verr := verify.Check(page, result.Headings)

	require.Nil(t, verr)
	assert.Equal(t, []verify.Problem{
		{Kind: verify.ProblemDuplicateID, ID: "Intro"},
		{Kind: verify.ProblemDanglingLink, ID: "Gone"},
		{Kind: verify.ProblemMissingAnchor, ID: "Missing"},
	}, report.Problems)
	assert.False(t, report.OK())
	assert.Contains(t, report.String(), `duplicate id "Intro"`)
}

func TestCheck_LinksOutsideContainerIgnored(t *testing.T) {
	report, verr := verify.Check(`<p><a href="#nowhere">x</a></p>`, nil)

	require.Nil(t, verr)
	assert.True(t, report.OK())
	assert.Equal(t, "ok", report.String())
}

func TestVerifier_RecordsProblems(t *testing.T) {
	sink := &errorCountingSink{}
	verifier := verify.NewVerifier(sink)

	_, err := verifier.Verify("page.html", `<p id="a"></p><p id="a"></p>`, nil)

	require.NotNil(t, err)
	var verifyErr *verify.VerifyError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, verify.ErrCauseProblems, verifyErr.Cause)
	assert.Equal(t, failure.SeverityRecoverable, err.Severity())
	assert.Equal(t, []metadata.ErrorCause{metadata.CauseInvariantViolation}, sink.causes)
}

func TestVerifier_CleanPage(t *testing.T) {
	sink := &errorCountingSink{}

	report, err := verify.NewVerifier(sink).Verify("page.html", `<p id="a"></p>`, nil)

	assert.Nil(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, sink.causes)
}
