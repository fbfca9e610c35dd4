// Package parsererror defines the error taxonomy for per-file processing.
package parsererror

import "fmt"

// ExtractionError reports that no extraction method could read text from a
// file. It is terminal for that file: no transactions are returned.
type ExtractionError struct {
	FilePath string
	Msg      string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed for %s: %s: %v", e.FilePath, e.Msg, e.Err)
	}
	return fmt.Sprintf("text extraction failed for %s: %s", e.FilePath, e.Msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UnknownBankError reports that the detector returned "unknown" or the
// registry had no parser for the detected identifier.
type UnknownBankError struct {
	FilePath string
	BankID   string
}

func (e *UnknownBankError) Error() string {
	return fmt.Sprintf("no parser available for detected bank '%s' in %s", e.BankID, e.FilePath)
}

// ValidationError represents a file-level intake failure, such as the
// upload limits on size or extension. Malformed statement lines are not
// errors: parsers skip them and log the skip.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
