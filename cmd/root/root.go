// Package root contains the root command for the application
package root

import (
	"fjacquet/labordist-csv/internal/config"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/report"
	"fjacquet/labordist-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Summary  string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "labordist-csv",
		Short: "A CLI tool to clean labor distribution exports and summarize compensation.",
		Long: `labordist-csv is a CLI tool that cleans tab-delimited labor distribution
exports from the payroll system and produces per-employee salary and benefit
summaries in CSV format.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Do Stuff Here
			Log.Info("Welcome to labordist-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			cfg := config.GetGlobalConfig()
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for the packages that keep one
			store.SetLogger(Log)
			report.SetLogger(Log)

			// Apply the configured report settings
			report.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			report.SetIncludeHeaders(cfg.CSV.IncludeHeaders)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := config.GetEnv("CSV_DELIMITER", ""); delim != "" {
				Log.WithField(logging.FieldDelimiter, delim).Debug("Setting CSV delimiter from environment")
				report.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input labor distribution export file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file for the cleaned CSV")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Summary, "summary", "s", "", "Output file for the salary and benefit summary")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before processing")
}
