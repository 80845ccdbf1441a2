package source

import (
	"fmt"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

type SourceErrorCause string

const (
	ErrCauseReadFailure SourceErrorCause = "read failed"
	ErrCauseNotAFile    SourceErrorCause = "not a regular file"
	ErrCauseParseFailed SourceErrorCause = "parse failed"
)

type SourceError struct {
	Message   string
	Retryable bool
	Cause     SourceErrorCause
	Path      string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: %s: %s", e.Cause, e.Message)
}

func (e *SourceError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func mapSourceErrorToMetadataCause(err *SourceError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseReadFailure, ErrCauseNotAFile, ErrCauseParseFailed:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
