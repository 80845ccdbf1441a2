package mdexport

import (
	"fmt"

	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
)

type ExportErrorCause string

const (
	ErrCauseParseFailure      ExportErrorCause = "parse failed"
	ErrCauseConversionFailure ExportErrorCause = "conversion failed"
)

type ExportError struct {
	Message   string
	Retryable bool
	Cause     ExportErrorCause
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("markdown export error: %s: %s", e.Cause, e.Message)
}

func (e *ExportError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func mapExportErrorToMetadataCause(err *ExportError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseParseFailure, ErrCauseConversionFailure:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
