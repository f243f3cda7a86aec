// Package labordist provides functionality to process labor distribution
// exports into a cleaned CSV and a salary and benefit summary without going
// through the CLI.
package labordist

import (
	"fmt"
	"io"

	"fjacquet/labordist-csv/internal/classifier"
	"fjacquet/labordist-csv/internal/ldparser"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/processor"
	"fjacquet/labordist-csv/internal/report"
	"fjacquet/labordist-csv/internal/store"
)

// Options controls decoding and classification. The zero value matches the
// payroll system's defaults: UTF-16LE input, tab delimiter, built-in rules.
type Options struct {
	// Encoding of the raw export: "utf-16le" (default), "utf-16be" or "utf-8".
	Encoding string

	// InputDelimiter separates cells in the raw export; 0 means tab.
	InputDelimiter rune

	// RulesFile optionally names a YAML file with classification rules that
	// are consulted ahead of the built-in account prefix mapping.
	RulesFile string
}

// ProcessFile cleans exportFile and writes the cleaned CSV to outputFile and
// the salary and benefit summary to summaryFile using default options.
func ProcessFile(exportFile, outputFile, summaryFile string) error {
	return ProcessFileWithOptions(exportFile, outputFile, summaryFile, Options{})
}

// ProcessFileWithOptions is ProcessFile with explicit options.
func ProcessFileWithOptions(exportFile, outputFile, summaryFile string, opts Options) error {
	log := logging.NewLogrusAdapter("info", "text")

	table, err := ldparser.ParseFileWithOptions(exportFile, parserOptions(opts), log)
	if err != nil {
		return fmt.Errorf("error parsing export: %w", err)
	}

	c, err := buildClassifier(opts, log)
	if err != nil {
		return err
	}

	result, err := processor.Process(table, c, log)
	if err != nil {
		return fmt.Errorf("error processing export: %w", err)
	}

	if err := report.WriteProcessedFile(outputFile, result.Cleaned); err != nil {
		return fmt.Errorf("error writing cleaned CSV: %w", err)
	}
	if err := report.WriteSummaryFile(summaryFile, result.Salary, result.Benefits); err != nil {
		return fmt.Errorf("error writing summary CSV: %w", err)
	}
	return nil
}

// Process cleans the export read from r and writes the cleaned CSV to
// cleaned and the summary to summary using default options.
func Process(r io.Reader, cleaned, summary io.Writer) error {
	return ProcessWithOptions(r, cleaned, summary, Options{})
}

// ProcessWithOptions is Process with explicit options.
func ProcessWithOptions(r io.Reader, cleaned, summary io.Writer, opts Options) error {
	log := logging.NewLogrusAdapter("info", "text")

	table, err := ldparser.ParseWithOptions(r, parserOptions(opts), log)
	if err != nil {
		return fmt.Errorf("error parsing export: %w", err)
	}

	c, err := buildClassifier(opts, log)
	if err != nil {
		return err
	}

	result, err := processor.Process(table, c, log)
	if err != nil {
		return fmt.Errorf("error processing export: %w", err)
	}

	if err := report.WriteProcessed(cleaned, result.Cleaned); err != nil {
		return fmt.Errorf("error writing cleaned CSV: %w", err)
	}
	if err := report.WriteSummary(summary, result.Salary, result.Benefits); err != nil {
		return fmt.Errorf("error writing summary CSV: %w", err)
	}
	return nil
}

func parserOptions(opts Options) ldparser.Options {
	parsed := ldparser.DefaultOptions()
	if opts.Encoding != "" {
		parsed.Encoding = opts.Encoding
	}
	if opts.InputDelimiter != 0 {
		parsed.Delimiter = opts.InputDelimiter
	}
	return parsed
}

// buildClassifier differs from the CLI's behavior: a library caller named
// the rules file explicitly, so load failures are returned, not skipped.
func buildClassifier(opts Options, log logging.Logger) (*classifier.Classifier, error) {
	if opts.RulesFile == "" {
		return classifier.New(log), nil
	}

	rules, err := store.NewRuleStore(opts.RulesFile).LoadRules()
	if err != nil {
		return nil, fmt.Errorf("error loading classification rules: %w", err)
	}
	if len(rules) == 0 {
		return classifier.New(log), nil
	}

	c, err := classifier.NewWithRules(rules, log)
	if err != nil {
		return nil, fmt.Errorf("error building classifier: %w", err)
	}
	return c, nil
}
