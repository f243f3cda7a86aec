package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldEncoding  = "encoding"
	FieldDelimiter = "delimiter"
	FieldColumn    = "column"
	FieldRows      = "rows"
	FieldColumns   = "columns"
	FieldCount     = "count"
)
