// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/labordist-csv/internal/classifier"
	"fjacquet/labordist-csv/internal/config"
	"fjacquet/labordist-csv/internal/ldparser"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/processor"
	"fjacquet/labordist-csv/internal/store"
)

// ErrInvalidFormat is returned when the input file fails format validation.
var ErrInvalidFormat = errors.New("file is not in a valid format")

// ParserOptions maps the global configuration onto parser options for the
// raw export reader.
func ParserOptions() ldparser.Options {
	cfg := config.GetGlobalConfig()

	opts := ldparser.DefaultOptions()
	if cfg.Input.Encoding != "" {
		opts.Encoding = cfg.Input.Encoding
	}
	if cfg.Input.Delimiter != "" {
		opts.Delimiter = []rune(cfg.Input.Delimiter)[0]
	}
	return opts
}

// BuildClassifier assembles the payment type classifier from the rules file
// named in the configuration. Rules that cannot be loaded or validated are
// reported and skipped so a bad rules file never blocks processing.
func BuildClassifier(log logging.Logger) *classifier.Classifier {
	cfg := config.GetGlobalConfig()

	rules, err := store.NewRuleStore(cfg.Classifier.RulesFile).LoadRules()
	if err != nil {
		log.WithError(err).Warn("Failed to load classification rules, using built-in rules")
		return classifier.New(log)
	}
	if len(rules) == 0 {
		return classifier.New(log)
	}

	c, err := classifier.NewWithRules(rules, log)
	if err != nil {
		log.WithError(err).Warn("Invalid classification rules, using built-in rules")
		return classifier.New(log)
	}
	return c
}

// RunPipelineWithError parses the input export and runs the cleaning and
// aggregation pipeline, returning an error instead of exiting on failure.
func RunPipelineWithError(inputFile string, validate bool, log logging.Logger) (*processor.Result, error) {
	opts := ParserOptions()

	if validate {
		log.Info("Validating format...")
		valid, err := ldparser.ValidateFormatWithOptions(inputFile, opts, log)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, ErrInvalidFormat
		}
		log.Info("Validation successful.")
	}

	table, err := ldparser.ParseFileWithOptions(inputFile, opts, log)
	if err != nil {
		return nil, fmt.Errorf("error parsing export: %w", err)
	}

	result, err := processor.Process(table, BuildClassifier(log), log)
	if err != nil {
		return nil, fmt.Errorf("error processing export: %w", err)
	}
	return result, nil
}

// RunPipeline processes a single export file and exits the process on failure.
func RunPipeline(inputFile string, validate bool, log logging.Logger) *processor.Result {
	if inputFile == "" {
		log.Fatal("No input file specified, use --input")
	}

	result, err := RunPipelineWithError(inputFile, validate, log)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			log.Fatal("The file is not in a valid format")
		}
		log.Fatalf("Error processing file: %v", err)
	}
	log.Info("Processing completed successfully!")
	return result
}
