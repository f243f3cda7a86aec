// Package process handles the labor distribution processing command
package process

import (
	"fjacquet/labordist-csv/cmd/common"
	"fjacquet/labordist-csv/cmd/root"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/report"

	"github.com/spf13/cobra"
)

// Default artifact names, kept identical to what downstream spreadsheets
// already import.
const (
	DefaultOutputFile  = "processed_data.csv"
	DefaultSummaryFile = "summary.csv"
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process a labor distribution export",
	Long: `Process a labor distribution export: drop total rows, build full names,
classify payments by account code, then write the cleaned CSV and a salary
and benefit summary.`,
	Run: processFunc,
}

func processFunc(cmd *cobra.Command, args []string) {
	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}
	summaryFile := root.SharedFlags.Summary
	if summaryFile == "" {
		summaryFile = DefaultSummaryFile
	}

	root.Log.Info("Labor distribution process command called")
	root.Log.Infof("Input export file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", outputFile)
	root.Log.Infof("Summary CSV file: %s", summaryFile)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	result := common.RunPipeline(root.SharedFlags.Input, root.SharedFlags.Validate, log)

	if err := report.WriteProcessedFile(outputFile, result.Cleaned); err != nil {
		root.Log.Fatalf("Error writing cleaned CSV: %v", err)
	}
	if err := report.WriteSummaryFile(summaryFile, result.Salary, result.Benefits); err != nil {
		root.Log.Fatalf("Error writing summary CSV: %v", err)
	}

	root.Log.Info("Labor distribution processing completed successfully!")
}
