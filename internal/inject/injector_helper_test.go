package inject_test

import (
	"testing"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/inject"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/internal/toc"
	"github.com/stretchr/testify/require"
)

// errorRecord stores the parameters passed to RecordError
type errorRecord struct {
	PackageName string
	Action      string
	Cause       metadata.ErrorCause
	Details     string
}

// metadataSinkMock is a mock for metadata.MetadataSink
type metadataSinkMock struct {
	errorRecords []errorRecord
}

func (m *metadataSinkMock) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	m.errorRecords = append(m.errorRecords, errorRecord{
		PackageName: packageName,
		Action:      action,
		Cause:       cause,
		Details:     details,
	})
}

func (m *metadataSinkMock) RecordExtraction(event metadata.ExtractionEvent) {}

func (m *metadataSinkMock) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
}

func newInjector(t *testing.T, cfg *config.Config) (inject.Injector, *metadataSinkMock) {
	t.Helper()
	built, err := cfg.Build()
	require.NoError(t, err)
	sink := &metadataSinkMock{}
	return inject.NewInjector(built, toc.NewExtractor(built), sink), sink
}

const twoHeadings = "<p>lead</p><h2>A</h2><p>a</p><h2>B</h2>"

const twoItems = `<li class="nav-item"><a class="nav-link" href="#A">A</a></li>` +
	`<li class="nav-item"><a class="nav-link" href="#B">B</a></li>`

const anchoredA = `<h2><span id="A">A</span></h2>`
const anchoredB = `<h2><span id="B">B</span></h2>`

func defaultContainer(items string) string {
	return `<div id="toc_container" class="no_bullets"><p class="toc_title">Contents</p>` +
		`<ul class="toc_list">` + items + "</ul></div>\n"
}
