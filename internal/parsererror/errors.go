package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for the labor-distribution export.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents an error where specific required data could not
// be extracted from a row, even if the input format itself is valid. Row is
// 1-based over data rows (the header is not counted); zero means unknown.
type DataExtractionError struct {
	FilePath       string
	FieldName      string
	Row            int
	RawDataSnippet string // Optional: a snippet of the raw data where extraction failed
	Reason         string
	Msg            string
}

func (e *DataExtractionError) Error() string {
	location := fmt.Sprintf("for field '%s'", e.FieldName)
	if e.Row > 0 {
		location = fmt.Sprintf("for field '%s' at row %d", e.FieldName, e.Row)
	}
	prefix := "data extraction failed"
	if e.FilePath != "" {
		prefix = fmt.Sprintf("data extraction failed in file '%s'", e.FilePath)
	}
	if e.RawDataSnippet != "" {
		return fmt.Sprintf("%s %s: %s. Reason: %s. Raw data snippet: '%s'",
			prefix, location, e.Msg, e.Reason, e.RawDataSnippet)
	}
	return fmt.Sprintf("%s %s: %s. Reason: %s", prefix, location, e.Msg, e.Reason)
}
