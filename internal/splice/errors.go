package splice

import (
	"fmt"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

type SpliceErrorCause string

const (
	ErrCauseLengthMismatch SpliceErrorCause = "find and replace lengths differ"
)

type SpliceError struct {
	Message   string
	Retryable bool
	Cause     SpliceErrorCause
}

func (e *SpliceError) Error() string {
	return fmt.Sprintf("splice error: %s: %s", e.Cause, e.Message)
}

func (e *SpliceError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// MapSpliceErrorToMetadataCause maps splice-local error semantics to the
// canonical metadata.ErrorCause table. Observational only.
func MapSpliceErrorToMetadataCause(err *SpliceError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseLengthMismatch:
		return metadata.CauseInvariantViolation
	default:
		return metadata.CauseUnknown
	}
}
