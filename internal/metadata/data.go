package metadata

import (
	"time"
)

type ExtractionEvent struct {
	sourcePath   string
	headingCount int
	hierarchical bool
	duration     time.Duration
}

func NewExtractionEvent(
	sourcePath string,
	headingCount int,
	hierarchical bool,
	duration time.Duration,
) ExtractionEvent {
	return ExtractionEvent{
		sourcePath:   sourcePath,
		headingCount: headingCount,
		hierarchical: hierarchical,
		duration:     duration,
	}
}

func (e ExtractionEvent) SourcePath() string {
	return e.sourcePath
}

func (e ExtractionEvent) HeadingCount() int {
	return e.headingCount
}

func (e ExtractionEvent) Hierarchical() bool {
	return e.hierarchical
}

func (e ExtractionEvent) Duration() time.Duration {
	return e.duration
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.
	 - ErrorCause does not encode severity or retryability.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown
  - The failure does not map cleanly to any known category.

# CauseContentInvalid
  - Input could not be read or rendered into HTML.
  - Markdown export of the list markup failed.

# CauseStorageFailure
  - Disk full, permission errors, filesystem I/O failures.

# CauseInvariantViolation
  - Find/replace sequences of different length.
  - Rewritten page fails verification (duplicate ids, dangling links).
*/
const (
	CauseUnknown ErrorCause = iota
	CauseContentInvalid
	CauseStorageFailure
	CauseInvariantViolation
)

func (c ErrorCause) String() string {
	switch c {
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	case CauseInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

type ArtifactKind string

const (
	ArtifactPage     ArtifactKind = "page"
	ArtifactTOC      ArtifactKind = "toc"
	ArtifactMarkdown ArtifactKind = "toc_markdown"
)

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrSourcePath  AttributeKey = "source_path"
	AttrWritePath   AttributeKey = "write_path"
	AttrContentHash AttributeKey = "content_hash"
	AttrAnchor      AttributeKey = "anchor"
	AttrField       AttributeKey = "field"
)
