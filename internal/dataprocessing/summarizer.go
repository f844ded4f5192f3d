package dataprocessing

import (
	"encoding/json"
	"fmt"
	"io"

	"vitalscli/pkg/contracts/domain"
)

// BuildSummary counts the labeled rows of t and collects them as records.
// Rows without a recognised status count as neither, which a Transform
// output never produces.
func BuildSummary(t Table) domain.Summary {
	summary := domain.Summary{
		TotalReadings: t.Len(),
		Records:       t.Records(),
	}

	idx := t.Index(domain.ColumnStatus)
	if idx < 0 {
		return summary
	}
	for _, row := range t.Rows {
		status, _ := row[idx].Value.(string)
		switch domain.Status(status) {
		case domain.StatusCritical:
			summary.CriticalCount++
		case domain.StatusNormal:
			summary.NormalCount++
		}
	}
	return summary
}

// ExportSummary writes s as indented JSON followed by a newline
func ExportSummary(w io.Writer, s domain.Summary) error {
	if s.Records == nil {
		s.Records = []domain.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}
