package source_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/stretchr/testify/require"
)

// errorRecord stores the parameters passed to RecordError
type errorRecord struct {
	PackageName string
	Action      string
	Cause       metadata.ErrorCause
	Attrs       []metadata.Attribute
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
		Attrs:       attrs,
	})
}

func (m *metadataSinkMock) RecordExtraction(event metadata.ExtractionEvent) {}

func (m *metadataSinkMock) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
