// Package report writes the pipeline's outputs: the processed transaction
// table and the two-section per-employee summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/labordist-csv/internal/config"
	"fjacquet/labordist-csv/internal/currencyutils"
	"fjacquet/labordist-csv/internal/fileutils"
	"fjacquet/labordist-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// Global CSV delimiter - can be configured via centralized config or environment variable
var Delimiter rune = ','

// IncludeHeaders controls whether the processed-data report starts with a
// header row. The summary report's section headers are part of its layout
// and are always written.
var IncludeHeaders = true

func init() {
	// Fallback to environment variable for backward compatibility
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetIncludeHeaders toggles the header row of the processed-data report.
func SetIncludeHeaders(include bool) {
	IncludeHeaders = include
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// SalaryRow is one line of the salary section of the summary report.
type SalaryRow struct {
	FullName    string `csv:"Full Name"`
	TotalSalary string `csv:"Total Salary"`
}

// BenefitRow is one line of the benefits section of the summary report.
type BenefitRow struct {
	FullName      string `csv:"Full Name"`
	TotalBenefits string `csv:"Total Benefits"`
}

// WriteSummary writes the two-section summary report: the salary totals
// under a "Full Name,Total Salary" header, one blank row, then the benefit
// totals under a "Full Name,Total Benefits" header. Totals render as
// US-locale currency strings; fields containing the delimiter or quotes get
// standard CSV quoting.
func WriteSummary(w io.Writer, salary, benefits []models.SummaryEntry) error {
	salaryRows := make([]SalaryRow, 0, len(salary))
	for _, entry := range salary {
		salaryRows = append(salaryRows, SalaryRow{
			FullName:    entry.FullName,
			TotalSalary: currencyutils.FormatUSD(entry.Total),
		})
	}
	benefitRows := make([]BenefitRow, 0, len(benefits))
	for _, entry := range benefits {
		benefitRows = append(benefitRows, BenefitRow{
			FullName:      entry.FullName,
			TotalBenefits: currencyutils.FormatUSD(entry.Total),
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	safeWriter := gocsv.NewSafeCSVWriter(csvWriter)

	if err := gocsv.MarshalCSV(salaryRows, safeWriter); err != nil {
		return fmt.Errorf("error writing salary summary: %w", err)
	}
	// Blank separator row between the two sections
	if err := csvWriter.Write([]string{}); err != nil {
		return fmt.Errorf("error writing section separator: %w", err)
	}
	if err := gocsv.MarshalCSV(benefitRows, safeWriter); err != nil {
		return fmt.Errorf("error writing benefits summary: %w", err)
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteSummaryFile writes the summary report to a file, creating parent
// directories as needed.
func WriteSummaryFile(filePath string, salary, benefits []models.SummaryEntry) error {
	log.WithFields(logrus.Fields{
		"file":            filePath,
		"salary_entries":  len(salary),
		"benefit_entries": len(benefits),
	}).Info("Writing summary report")

	file, err := createReportFile(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteSummary(file, salary, benefits); err != nil {
		log.WithError(err).Error("Failed to write summary report")
		return err
	}

	log.WithField("file", filePath).Info("Successfully wrote summary report")
	return nil
}

// WriteProcessed serializes the cleaned transaction table with standard CSV
// quoting and no index column. Cells keep their original text, including the
// amount column.
func WriteProcessed(w io.Writer, table *models.Table) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if IncludeHeaders {
		if err := csvWriter.Write(table.Columns); err != nil {
			return fmt.Errorf("error writing header row: %w", err)
		}
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, name := range table.Columns {
			record[i] = row.Get(name)
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("error writing data row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteProcessedFile writes the cleaned transaction table to a file, creating
// parent directories as needed.
func WriteProcessedFile(filePath string, table *models.Table) error {
	log.WithFields(logrus.Fields{
		"file": filePath,
		"rows": len(table.Rows),
	}).Info("Writing processed data report")

	file, err := createReportFile(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteProcessed(file, table); err != nil {
		log.WithError(err).Error("Failed to write processed data report")
		return err
	}

	log.WithFields(logrus.Fields{
		"file": filePath,
		"rows": len(table.Rows),
	}).Info("Successfully wrote processed data report")
	return nil
}

func createReportFile(filePath string) (*os.File, error) {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, models.PermissionReportFile) // #nosec G304 -- CLI tool writes to user-provided paths
	if err != nil {
		log.WithError(err).Error("Failed to create report file")
		return nil, fmt.Errorf("error creating report file: %w", err)
	}
	return file, nil
}
