package storage_test

import (
	"time"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/hashutil"
)

// errorRecord stores the parameters passed to RecordError
type errorRecord struct {
	PackageName string
	Action      string
	Cause       metadata.ErrorCause
	Details     string
	Attrs       []metadata.Attribute
}

// artifactRecord stores the parameters passed to RecordArtifact
type artifactRecord struct {
	Kind  metadata.ArtifactKind
	Path  string
	Attrs []metadata.Attribute
}

// metadataSinkMock is a mock for metadata.MetadataSink
type metadataSinkMock struct {
	errorRecords    []errorRecord
	artifactRecords []artifactRecord
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
		Attrs:       attrs,
	})
}

func (m *metadataSinkMock) RecordExtraction(event metadata.ExtractionEvent) {}

func (m *metadataSinkMock) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
	m.artifactRecords = append(m.artifactRecords, artifactRecord{
		Kind:  kind,
		Path:  path,
		Attrs: attrs,
	})
}

func mustHash(content string, algo hashutil.HashAlgo) string {
	hash, err := hashutil.HashString(content, algo)
	if err != nil {
		panic(err)
	}
	return hash
}
