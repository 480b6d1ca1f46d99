package analyze

import "fmt"

// InsufficientContentError signals that the extracted text is too short to
// analyze meaningfully. It aborts the pipeline before matching.
type InsufficientContentError struct {
	Length    int
	MinLength int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("insufficient resume content: got %d characters, need at least %d", e.Length, e.MinLength)
}

// UnsupportedFormatError signals that the document extractor produced no
// text for an unrecognized container format. It is handled the same way
// as insufficient content: no report is produced.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Filename)
}

// BackendFailureError wraps a failure from an alternative scoring backend
// (similarity blend or LLM analyzer). The keyword scoring path is
// unaffected by these failures; callers can rerun with the default
// strategy to obtain an independent report.
type BackendFailureError struct {
	Strategy string
	Cause    error
}

func (e *BackendFailureError) Error() string {
	return fmt.Sprintf("scoring backend %q failed: %v", e.Strategy, e.Cause)
}

func (e *BackendFailureError) Unwrap() error {
	return e.Cause
}
