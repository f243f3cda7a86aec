// Package preview handles the on-screen preview command
package preview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/labordist-csv/cmd/common"
	"fjacquet/labordist-csv/cmd/root"
	"fjacquet/labordist-csv/internal/config"
	"fjacquet/labordist-csv/internal/currencyutils"
	"fjacquet/labordist-csv/internal/logging"
	"fjacquet/labordist-csv/internal/models"
	"fjacquet/labordist-csv/internal/processor"

	"github.com/spf13/cobra"
)

var rows int

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the cleaned export and summaries without writing files",
	Long: `Preview runs the full processing pipeline and prints the first rows of the
cleaned export plus the salary and benefit summaries to standard output.`,
	Run: previewFunc,
}

func init() {
	Cmd.Flags().IntVarP(&rows, "rows", "r", 0, "Number of cleaned rows to show (0 uses preview.rows from config)")
}

func previewFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Labor distribution preview command called")
	root.Log.Infof("Input export file: %s", root.SharedFlags.Input)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	result := common.RunPipeline(root.SharedFlags.Input, root.SharedFlags.Validate, log)

	limit := rows
	if limit <= 0 {
		limit = config.GetGlobalConfig().Preview.Rows
	}

	if err := Render(cmd.OutOrStdout(), result, limit); err != nil {
		root.Log.Fatalf("Error rendering preview: %v", err)
	}
}

// Render prints the first limit cleaned rows and both summary tables in
// aligned columns.
func Render(w io.Writer, result *processor.Result, limit int) error {
	shown := len(result.Cleaned.Rows)
	if limit < shown {
		shown = limit
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Cleaned rows (showing %d of %d):\n", shown, len(result.Cleaned.Rows))
	fmt.Fprintln(tw, strings.Join(result.Cleaned.Columns, "\t"))
	for _, row := range result.Cleaned.Rows[:shown] {
		cells := make([]string, len(result.Cleaned.Columns))
		for i, column := range result.Cleaned.Columns {
			cells[i] = row.Get(column)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Salary totals:")
	writeSummarySection(tw, "Total Salary", result.Salary)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Benefit totals:")
	writeSummarySection(tw, "Total Benefits", result.Benefits)

	return tw.Flush()
}

func writeSummarySection(tw *tabwriter.Writer, totalHeader string, entries []models.SummaryEntry) {
	fmt.Fprintf(tw, "%s\t%s\n", models.ColumnFullName, totalHeader)
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", entry.FullName, currencyutils.FormatUSD(entry.Total))
	}
}
