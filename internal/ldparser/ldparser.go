// Package ldparser provides functionality to parse labor distribution exports
// produced by the payroll system. It decodes the raw bytes (UTF-16LE by
// default) and tabularizes the tab-separated content into a generic table.
package ldparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/models"
	"fjacquet/labordist-csv/internal/parsererror"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported input encodings.
const (
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingUTF8    = "utf-8"
)

// Options control how the raw export bytes are decoded and tabularized.
type Options struct {
	// Encoding names the character encoding of the input. One of
	// EncodingUTF16LE (the default), EncodingUTF16BE or EncodingUTF8.
	Encoding string
	// Delimiter separates cells within a record. Defaults to tab.
	Delimiter rune
}

// DefaultOptions returns the options matching the export files the payroll
// system produces: UTF-16LE text with tab-separated cells.
func DefaultOptions() Options {
	return Options{
		Encoding:  EncodingUTF16LE,
		Delimiter: '\t',
	}
}

// Parse reads a labor distribution export from an io.Reader using the default
// options and returns the decoded table.
func Parse(r io.Reader, logger logging.Logger) (*models.Table, error) {
	return ParseWithOptions(r, DefaultOptions(), logger)
}

// ParseWithOptions reads a labor distribution export from an io.Reader and
// returns the decoded table. The first record is the header; every following
// record becomes a row keyed by column name. Cell text is kept verbatim
// because the downstream cleaning rules are whitespace sensitive.
func ParseWithOptions(r io.Reader, opts Options, logger logging.Logger) (*models.Table, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading labor distribution export from reader",
		logging.Field{Key: logging.FieldEncoding, Value: opts.Encoding})

	reader, err := newExportReader(r, opts)
	if err != nil {
		return nil, err
	}

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       "(from reader)",
				ExpectedFormat: "labor distribution export",
				Msg:            "export is empty",
			}
		}
		return nil, &parsererror.ParseError{
			Parser: "labor distribution",
			Field:  "header",
			Value:  "header row",
			Err:    err,
		}
	}

	columns := dedupeColumns(header)
	if !hasNamedColumn(columns) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "labor distribution export",
			Msg:            "header row has no column names",
		}
	}

	table := models.NewTable(columns)
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			logger.WithError(err).Warn("Skipping malformed export row")
			continue
		}
		// Pad or truncate the record to match the header width
		if len(record) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, record)
			record = padded
		} else if len(record) > len(columns) {
			record = record[:len(columns)]
		}

		row := make(models.Row, len(columns))
		for i, name := range columns {
			row[name] = record[i]
		}
		table.AppendRow(row)
	}

	logger.Info("Successfully read labor distribution export",
		logging.Field{Key: logging.FieldRows, Value: len(table.Rows)},
		logging.Field{Key: logging.FieldColumns, Value: len(table.Columns)})
	return table, nil
}

// ParseFile parses a labor distribution export file using the default options.
// This is the main entry point for parsing export files.
func ParseFile(filePath string) (*models.Table, error) {
	return ParseFileWithLogger(filePath, nil)
}

// ParseFileWithLogger parses a labor distribution export file with logger.
func ParseFileWithLogger(filePath string, logger logging.Logger) (*models.Table, error) {
	return ParseFileWithOptions(filePath, DefaultOptions(), logger)
}

// ParseFileWithOptions parses a labor distribution export file with explicit
// decode options.
func ParseFileWithOptions(filePath string, opts Options, logger logging.Logger) (*models.Table, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Parsing labor distribution export file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to open export file")
		return nil, fmt.Errorf("error opening export file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return ParseWithOptions(file, opts, logger)
}

// ValidateFormat checks if the file is a decodable labor distribution export.
func ValidateFormat(filePath string) (bool, error) {
	return ValidateFormatWithLogger(filePath, nil)
}

// ValidateFormatWithLogger checks if the file is a decodable labor
// distribution export with logger.
func ValidateFormatWithLogger(filePath string, logger logging.Logger) (bool, error) {
	return ValidateFormatWithOptions(filePath, DefaultOptions(), logger)
}

// ValidateFormatWithOptions checks if the file is a decodable labor
// distribution export with explicit decode options. A valid export decodes
// and carries at least one named header column; no particular columns are
// required because every downstream stage tolerates missing ones.
func ValidateFormatWithOptions(filePath string, opts Options, logger logging.Logger) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Validating labor distribution export format",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldEncoding, Value: opts.Encoding})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to open file for validation")
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader, err := newExportReader(file, opts)
	if err != nil {
		return false, err
	}

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return false, &parsererror.ValidationError{FilePath: filePath, Reason: "export file is empty"}
		}
		return false, &parsererror.ValidationError{FilePath: filePath, Reason: "unreadable export header", Err: err}
	}
	if !hasNamedColumn(header) {
		logger.Info("Header row has no column names",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return false, nil
	}

	logger.Debug("Labor distribution export format validation successful")
	return true, nil
}

// newExportReader builds a csv.Reader that decodes the input on the fly and
// tolerates the loose shape of real exports (variable field counts, stray
// quotes inside cells).
func newExportReader(r io.Reader, opts Options) (*csv.Reader, error) {
	decoder, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = '\t'
	}

	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable number of fields
	return reader, nil
}

// decoderFor maps an encoding name to its character decoder. UTF-16 decoders
// honor a leading byte order mark; the UTF-8 decoder strips one if present.
func decoderFor(encodingName string) (*encoding.Decoder, error) {
	switch encodingName {
	case EncodingUTF16LE, "":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingUTF8:
		return unicode.UTF8BOM.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported input encoding: %s", encodingName)
	}
}

// dedupeColumns disambiguates repeated header names by appending a numeric
// suffix (Name, Name.1, Name.2) so a later column cannot overwrite the cells
// of an earlier one in the row map.
func dedupeColumns(header []string) []string {
	columns := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for _, name := range header {
		candidate := name
		for seen[candidate] {
			counts[name]++
			candidate = fmt.Sprintf("%s.%d", name, counts[name])
		}
		seen[candidate] = true
		columns = append(columns, candidate)
	}
	return columns
}

// hasNamedColumn reports whether at least one header cell carries a name.
func hasNamedColumn(columns []string) bool {
	for _, c := range columns {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}
