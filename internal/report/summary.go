package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vvka-141/replmeta/internal/audit"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

var summarySeverities = []replmeta.Severity{
	replmeta.SeverityError,
	replmeta.SeverityWarn,
	replmeta.SeverityInfo,
	replmeta.SeverityDebug,
}

// WriteSummary writes a table with finding counts per file and severity and
// a total row.
func WriteSummary(w io.Writer, r *audit.Report) error {
	table := tablewriter.NewWriter(w)

	header := []string{"File"}
	for _, sev := range summarySeverities {
		header = append(header, sev.String())
	}
	if err := table.Append(header); err != nil {
		return fmt.Errorf("failed to append header row: %w", err)
	}

	files, groups := r.ByFile()
	for _, file := range files {
		counts := make(map[replmeta.Severity]int)
		for _, f := range groups[file] {
			counts[f.Diagnostic.Severity]++
		}
		if err := table.Append(countRow(file, counts)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Append(countRow("Total", r.Counts())); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func countRow(label string, counts map[replmeta.Severity]int) []string {
	row := []string{label}
	for _, sev := range summarySeverities {
		row = append(row, strconv.Itoa(counts[sev]))
	}
	return row
}
