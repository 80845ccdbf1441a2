package metadata

import (
	"time"

	"github.com/rs/zerolog"
)

/*
Metadata Collected
- Heading counts per source
- Extraction durations
- Written artifact paths and content hashes
- Classified failures

Metadata is write-only.
No component may read metadata to influence processing decisions.
*/

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
	RecordExtraction(event ExtractionEvent)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
}

// Compile-time interface checks
var (
	_ MetadataSink = (*Recorder)(nil)
	_ MetadataSink = (*NoopSink)(nil)
)

/*
Recorder emits structured events through a zerolog logger.
It must not:
- perform I/O decisions
- affect control flow
Events are written synchronously in the order they are received.
*/
type Recorder struct {
	logger zerolog.Logger
}

func NewRecorder(logger zerolog.Logger) Recorder {
	return Recorder{
		logger: logger.With().Str("component", "metadata").Logger(),
	}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	event := r.logger.Error().
		Time("observed_at", observedAt).
		Str("package", packageName).
		Str("action", action).
		Stringer("cause", cause)
	withAttrs(event, attrs).Msg(errorString)
}

func (r *Recorder) RecordExtraction(e ExtractionEvent) {
	r.logger.Debug().
		Str(string(AttrSourcePath), e.SourcePath()).
		Int("headings", e.HeadingCount()).
		Bool("hierarchical", e.Hierarchical()).
		Dur("duration", e.Duration()).
		Msg("extraction")
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	event := r.logger.Info().
		Str("kind", string(kind)).
		Str("path", path)
	withAttrs(event, attrs).Msg("artifact")
}

func withAttrs(event *zerolog.Event, attrs []Attribute) *zerolog.Event {
	for _, attr := range attrs {
		event = event.Str(string(attr.Key), attr.Value)
	}
	return event
}

// NoopSink implements MetadataSink and discards everything.
// Callers (or tests) decide whether to inject Recorder or NoopSink.
type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordExtraction(event ExtractionEvent) {}

func (n *NoopSink) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {}
