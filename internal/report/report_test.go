package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/labordist-csv/internal/ldparser"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryEntry(name, total string) models.SummaryEntry {
	return models.SummaryEntry{
		FullName: name,
		Total:    decimal.RequireFromString(total),
	}
}

func TestWriteSummary(t *testing.T) {
	salary := []models.SummaryEntry{
		summaryEntry("Amy Brown", "50.25"),
		summaryEntry("Zoe Adams", "1234.56"),
	}
	benefits := []models.SummaryEntry{
		summaryEntry("Pat Doe", "-1234.5"),
		summaryEntry("Smith, John", "7.5"),
	}

	var buf bytes.Buffer
	err := WriteSummary(&buf, salary, benefits)
	require.NoError(t, err)

	expected := "Full Name,Total Salary\n" +
		"Amy Brown,$50.25\n" +
		"Zoe Adams,\"$1,234.56\"\n" +
		"\n" +
		"Full Name,Total Benefits\n" +
		"Pat Doe,\"$-1,234.50\"\n" +
		"\"Smith, John\",$7.50\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteSummary_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, nil, nil)
	require.NoError(t, err)

	expected := "Full Name,Total Salary\n" +
		"\n" +
		"Full Name,Total Benefits\n"
	assert.Equal(t, expected, buf.String(),
		"an empty run still produces both section headers")
}

func TestWriteProcessed(t *testing.T) {
	table := models.NewTable([]string{
		models.ColumnFullName,
		models.ColumnPaymentType,
		models.ColumnAmount,
	})
	table.AppendRow(models.Row{
		models.ColumnFullName:    "Smith, John",
		models.ColumnPaymentType: models.PaymentTypeSalary,
		models.ColumnAmount:      "$1,000.00",
	})
	table.AppendRow(models.Row{
		models.ColumnFullName:    `He said "hi"`,
		models.ColumnPaymentType: models.PaymentTypeOther,
		models.ColumnAmount:      "",
	})

	var buf bytes.Buffer
	err := WriteProcessed(&buf, table)
	require.NoError(t, err)

	expected := "Full Name,Payment Type,Amount\n" +
		"\"Smith, John\",Salary,\"$1,000.00\"\n" +
		"\"He said \"\"hi\"\"\",Other,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteProcessed_WithoutHeaders(t *testing.T) {
	SetIncludeHeaders(false)
	defer SetIncludeHeaders(true)

	table := models.NewTable([]string{models.ColumnFullName, models.ColumnAmount})
	table.AppendRow(models.Row{
		models.ColumnFullName: "Amy Brown",
		models.ColumnAmount:   "$5.00",
	})

	var buf bytes.Buffer
	err := WriteProcessed(&buf, table)
	require.NoError(t, err)
	assert.Equal(t, "Amy Brown,$5.00\n", buf.String())
}

func TestWriteProcessed_EmptyTable(t *testing.T) {
	table := models.NewTable([]string{models.ColumnFullName, models.ColumnAmount})

	var buf bytes.Buffer
	err := WriteProcessed(&buf, table)
	require.NoError(t, err)
	assert.Equal(t, "Full Name,Amount\n", buf.String(),
		"an empty table still produces the header row")
}

func TestSetDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	table := models.NewTable([]string{models.ColumnFullName, models.ColumnAmount})
	table.AppendRow(models.Row{
		models.ColumnFullName: "Smith, John",
		models.ColumnAmount:   "$1,234.50",
	})

	var buf bytes.Buffer
	err := WriteProcessed(&buf, table)
	require.NoError(t, err)
	assert.Equal(t, "Full Name;Amount\nSmith, John;$1,234.50\n", buf.String(),
		"commas need no quoting once the delimiter is a semicolon")
}

func TestWriteProcessed_RoundTrip(t *testing.T) {
	table := models.NewTable([]string{
		models.ColumnFullName,
		models.ColumnPaymentType,
		models.ColumnAmount,
	})
	table.AppendRow(models.Row{
		models.ColumnFullName:    "Smith, John",
		models.ColumnPaymentType: models.PaymentTypeSalary,
		models.ColumnAmount:      "$1,000.00",
	})
	table.AppendRow(models.Row{
		models.ColumnFullName:    " Lee, Ann ",
		models.ColumnPaymentType: models.PaymentTypeBenefit,
		models.ColumnAmount:      "$2.50",
	})

	var buf bytes.Buffer
	require.NoError(t, WriteProcessed(&buf, table))

	opts := ldparser.Options{Encoding: ldparser.EncodingUTF8, Delimiter: ','}
	reparsed, err := ldparser.ParseWithOptions(bytes.NewReader(buf.Bytes()), opts, &logging.MockLogger{})
	require.NoError(t, err)

	require.Len(t, reparsed.Rows, len(table.Rows))
	assert.Equal(t, table.Columns, reparsed.Columns)
	for i, row := range table.Rows {
		assert.Equal(t, row.Get(models.ColumnFullName), reparsed.Rows[i].Get(models.ColumnFullName))
		assert.Equal(t, row.Get(models.ColumnPaymentType), reparsed.Rows[i].Get(models.ColumnPaymentType))
		assert.Equal(t, row.Get(models.ColumnAmount), reparsed.Rows[i].Get(models.ColumnAmount))
	}
}

func TestWriteSummaryFile(t *testing.T) {
	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "reports", "summary.csv")

	salary := []models.SummaryEntry{summaryEntry("Amy Brown", "50.25")}
	err := WriteSummaryFile(outputFile, salary, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Full Name,Total Salary")
	assert.Contains(t, string(content), "Amy Brown,$50.25")
	assert.Contains(t, string(content), "Full Name,Total Benefits")
}

func TestWriteProcessedFile(t *testing.T) {
	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "reports", "processed_data.csv")

	table := models.NewTable([]string{models.ColumnFullName, models.ColumnAmount})
	table.AppendRow(models.Row{
		models.ColumnFullName: "Amy Brown",
		models.ColumnAmount:   "$5.00",
	})

	err := WriteProcessedFile(outputFile, table)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "Full Name,Amount\nAmy Brown,$5.00\n", string(content))
}
