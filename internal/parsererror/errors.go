// Package parsererror defines the typed errors used at each processing
// boundary. Cell- and row-level problems are not represented here at all:
// they resolve to empty fields or skipped rows and never become errors.
package parsererror

import "fmt"

// InvalidFormatError represents an input file that does not conform to the
// expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// PageError represents a failure confined to a single page of a document.
// The page is skipped and processing of the document continues.
type PageError struct {
	FilePath string
	Page     int
	Err      error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d of '%s' could not be processed: %v",
		e.Page, e.FilePath, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// DocumentError represents a failure confined to a single document in a
// batch. The document is skipped and the batch continues.
type DocumentError struct {
	FilePath string
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document '%s' could not be processed: %v", e.FilePath, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// OutputError is the only fatal error class: no output location could be
// written. It is surfaced to the caller as a hard failure.
type OutputError struct {
	Attempted []string
	Err       error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("no writable output location (tried %d candidates): %v",
		len(e.Attempted), e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
