// Package parsererror defines the error types raised during statement
// extraction.
package parsererror

import "fmt"

// ParseError represents a failure while parsing a specific field or stage.
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected format (not a PDF, wrong password, unreadable). This class of
// error is fatal: no partial datasets are produced.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// PageError wraps a failure scoped to a single page. The orchestrator
// records it on the page's result and continues with the next page.
type PageError struct {
	PageNumber int
	Err        error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.PageNumber, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents required data that could not be pulled
// from an otherwise well-formed page region.
type DataExtractionError struct {
	Region string
	Field  string
	Reason string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in %s for field '%s': %s",
		e.Region, e.Field, e.Reason)
}
