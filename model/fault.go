package model

import "fmt"

// Severity classifies a failure inside the upload pipeline: critical
// failures abort the command, non-critical ones degrade it with a warning.
type Severity int

const (
	SeverityNonCritical Severity = iota
	SeverityCritical
)

// FlowError is an error with a severity tag and a user-facing reason. The
// reason is what gets shown to the invoker; the wrapped error stays in the
// process log.
type FlowError struct {
	Severity Severity
	Reason   string
	Err      error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// Critical wraps err as a pipeline-aborting failure.
func Critical(reason string, err error) *FlowError {
	return &FlowError{Severity: SeverityCritical, Reason: reason, Err: err}
}

// NonCritical wraps err as a degrading failure.
func NonCritical(reason string, err error) *FlowError {
	return &FlowError{Severity: SeverityNonCritical, Reason: reason, Err: err}
}
