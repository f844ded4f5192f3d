package exporter

import (
	"fmt"

	"vitalscli/internal/dataprocessing"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatCell renders a table cell as CSV text. Missing cells are empty.
func formatCell(c dataprocessing.Cell) string {
	if c.Missing {
		return ""
	}
	switch v := c.Value.(type) {
	case float64:
		return formatFloat(v)
	case int:
		return formatInt(v)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// tableRecords renders every row of t as CSV text
func tableRecords(t dataprocessing.Table) [][]string {
	records := make([][]string, 0, t.Len())
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, c := range row {
			record[i] = formatCell(c)
		}
		records = append(records, record)
	}
	return records
}
