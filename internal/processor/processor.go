// Package processor implements the labor distribution cleaning and
// aggregation pipeline: total-row filtering, identity normalization,
// payment-type classification and per-employee summation.
package processor

import (
	"sort"
	"strings"

	"fjacquet/labordist-csv/internal/classifier"
	"fjacquet/labordist-csv/internal/currencyutils"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/models"
	"fjacquet/labordist-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Result carries the three artifacts of a pipeline run: the cleaned
// transaction table and the per-employee salary and benefit summaries.
type Result struct {
	Cleaned  *models.Table
	Salary   []models.SummaryEntry
	Benefits []models.SummaryEntry
}

// Process runs the full pipeline over a decoded export table: drop total
// rows, normalize the identity column, classify payment types, parse the
// amounts and sum them per employee. The input table is not modified. A nil
// classifier falls back to the built-in prefix rules.
func Process(t *models.Table, c *classifier.Classifier, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if c == nil {
		c = classifier.New(logger)
	}
	logger.Info("Processing labor distribution table",
		logging.Field{Key: logging.FieldRows, Value: len(t.Rows)},
		logging.Field{Key: logging.FieldColumns, Value: len(t.Columns)})

	cleaned := FilterTotalRows(t, logger)
	NormalizeIdentity(cleaned, logger)
	c.ClassifyTable(cleaned)

	amounts, err := ParseAmounts(cleaned, logger)
	if err != nil {
		logger.WithError(err).Error("Amount parsing failed, aborting run")
		return nil, err
	}

	salary, benefits := Summarize(cleaned, amounts)
	cleaned.Reorder(models.PreferredColumnOrder)

	logger.Info("Successfully processed labor distribution table",
		logging.Field{Key: logging.FieldRows, Value: len(cleaned.Rows)},
		logging.Field{Key: "salary_entries", Value: len(salary)},
		logging.Field{Key: "benefit_entries", Value: len(benefits)})

	return &Result{Cleaned: cleaned, Salary: salary, Benefits: benefits}, nil
}

// FilterTotalRows returns a copy of the table without subtotal and grand
// total rows. A row is dropped when one of the total indicator columns
// contains the word "total" in any letter case, or, as a catch-all for
// unfamiliar layouts, when any cell does. Kept rows preserve their order.
func FilterTotalRows(t *models.Table, logger logging.Logger) *models.Table {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	indicators := presentIndicatorColumns(t)
	filtered := models.NewTable(t.Columns)
	for _, row := range t.Rows {
		if hasTotalIndicator(row, indicators) || anyCellContainsTotal(row) {
			continue
		}
		filtered.AppendRow(row.Clone())
	}

	removed := len(t.Rows) - len(filtered.Rows)
	if removed > 0 {
		logger.Info("Removed total rows from export",
			logging.Field{Key: logging.FieldCount, Value: removed})
	}
	return filtered
}

// NormalizeIdentity ensures every row carries the Full Name column the
// summaries group by. When the export has First Name and Last Name columns
// they are concatenated with a single space (absent cells read as empty
// strings, nothing is trimmed) and the source columns are dropped. An
// existing Full Name column is left untouched. Without either source,
// Full Name is set to the empty string on every row.
func NormalizeIdentity(t *models.Table, logger logging.Logger) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	switch {
	case t.HasColumn(models.ColumnFirstName) && t.HasColumn(models.ColumnLastName):
		t.AddColumn(models.ColumnFullName)
		for _, row := range t.Rows {
			row[models.ColumnFullName] = row.Get(models.ColumnFirstName) + " " + row.Get(models.ColumnLastName)
		}
		t.RemoveColumn(models.ColumnFirstName)
		t.RemoveColumn(models.ColumnLastName)
		logger.Debug("Built Full Name from first and last name columns",
			logging.Field{Key: logging.FieldRows, Value: len(t.Rows)})
	case t.HasColumn(models.ColumnFullName):
		logger.Debug("Export already carries a Full Name column")
	default:
		t.AddColumn(models.ColumnFullName)
		for _, row := range t.Rows {
			row[models.ColumnFullName] = ""
		}
		logger.Warn("Export has no name columns, Full Name will be empty")
	}
}

// ParseAmounts converts the amount column into decimals, index-aligned with
// the table's rows. A missing amount column yields zero for every row. A
// present cell that does not parse is a hard error: zeroing a real value
// would corrupt the totals. The returned error reports the 1-based data row
// and the raw cell text.
func ParseAmounts(t *models.Table, logger logging.Logger) ([]decimal.Decimal, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	amounts := make([]decimal.Decimal, len(t.Rows))
	if !t.HasColumn(models.ColumnAmount) {
		logger.Warn("Export has no amount column, all totals will be zero")
		return amounts, nil
	}

	for i, row := range t.Rows {
		raw := row.Get(models.ColumnAmount)
		amount, err := currencyutils.ParseAmount(raw)
		if err != nil {
			return nil, &parsererror.DataExtractionError{
				FieldName:      models.ColumnAmount,
				Row:            i + 1,
				RawDataSnippet: raw,
				Reason:         err.Error(),
				Msg:            "amount cell is not a currency-like number",
			}
		}
		amounts[i] = amount
	}
	return amounts, nil
}

// Summarize groups the salary and benefit subsets by Full Name and sums
// their amounts. Rows classified Other stay out of both summaries. Entries
// are ordered lexicographically by name so repeated runs produce identical
// reports. amounts must be index-aligned with the table's rows.
func Summarize(t *models.Table, amounts []decimal.Decimal) (salary, benefits []models.SummaryEntry) {
	salary = summarizeType(t, amounts, models.PaymentTypeSalary)
	benefits = summarizeType(t, amounts, models.PaymentTypeBenefit)
	return salary, benefits
}

func summarizeType(t *models.Table, amounts []decimal.Decimal, paymentType string) []models.SummaryEntry {
	totals := make(map[string]decimal.Decimal)
	names := make([]string, 0)
	for i, row := range t.Rows {
		if row.Get(models.ColumnPaymentType) != paymentType {
			continue
		}
		name := row.Get(models.ColumnFullName)
		if _, ok := totals[name]; !ok {
			names = append(names, name)
		}
		totals[name] = totals[name].Add(amounts[i])
	}
	sort.Strings(names)

	entries := make([]models.SummaryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, models.SummaryEntry{FullName: name, Total: totals[name]})
	}
	return entries
}

func presentIndicatorColumns(t *models.Table) []string {
	var present []string
	for _, name := range models.TotalIndicatorColumns {
		if t.HasColumn(name) {
			present = append(present, name)
		}
	}
	return present
}

// hasTotalIndicator reports whether one of the indicator columns present in
// the export marks the row as a subtotal or grand total line.
func hasTotalIndicator(row models.Row, indicatorColumns []string) bool {
	for _, name := range indicatorColumns {
		if containsTotal(row.Get(name)) {
			return true
		}
	}
	return false
}

// anyCellContainsTotal scans every cell of the row so totals cannot leak
// through layouts where an unexpected column carries the marker. The scan
// can false-positive on legitimate data containing the word "total"; that
// tradeoff is accepted to keep totals out of financial reports.
func anyCellContainsTotal(row models.Row) bool {
	for _, value := range row {
		if containsTotal(value) {
			return true
		}
	}
	return false
}

func containsTotal(cell string) bool {
	return strings.Contains(strings.ToLower(cell), "total")
}
