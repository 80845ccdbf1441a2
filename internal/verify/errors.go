package verify

import (
	"fmt"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

type VerifyErrorCause string

const (
	ErrCauseParseFailure VerifyErrorCause = "parse failed"
	ErrCauseProblems     VerifyErrorCause = "page has problems"
)

type VerifyError struct {
	Message   string
	Retryable bool
	Cause     VerifyErrorCause
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify error: %s: %s", e.Cause, e.Message)
}

// Severity is always recoverable: a page with problems is still written.
func (e *VerifyError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

func mapVerifyErrorToMetadataCause(err *VerifyError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseParseFailure:
		return metadata.CauseContentInvalid
	case ErrCauseProblems:
		return metadata.CauseInvariantViolation
	default:
		return metadata.CauseUnknown
	}
}
