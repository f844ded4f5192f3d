package dataprocessing

import (
	"fmt"
	"log/slog"
	"slices"

	"vitalscli/pkg/contracts/domain"
)

// HealthDataProcessor imputes missing biomarkers with the column median and
// labels every row against the screening thresholds.
type HealthDataProcessor struct {
	thresholds domain.Thresholds
	logger     *slog.Logger
}

// NewHealthDataProcessor creates a processor using the default thresholds
func NewHealthDataProcessor(logger *slog.Logger) *HealthDataProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthDataProcessor{
		thresholds: domain.DefaultThresholds(),
		logger:     logger,
	}
}

// Fit checks that the table carries every required column. It learns nothing.
func (p *HealthDataProcessor) Fit(t Table) error {
	for _, col := range requiredColumns {
		if !t.HasColumn(col) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

// Transform returns a labeled copy of t. Missing heart_rate and oxygen_level
// cells are filled with the median of the column's present values, then a
// status column is appended. Row order and extra columns are preserved and
// t itself is never modified. An existing status column is recomputed.
func (p *HealthDataProcessor) Transform(t Table) (Table, ProcessingStats, error) {
	if err := p.Fit(t); err != nil {
		return Table{}, ProcessingStats{}, err
	}

	out := dropColumn(t.Clone(), domain.ColumnStatus)
	stats := ProcessingStats{
		Rows:    out.Len(),
		Imputed: make(map[string]int, len(requiredColumns)),
		Medians: make(map[string]float64, len(requiredColumns)),
	}

	if out.Len() > 0 {
		for _, col := range requiredColumns {
			values := presentValues(out.Column(col))
			median, err := Median(values)
			if err != nil {
				return Table{}, ProcessingStats{}, fmt.Errorf("%w: %s", ErrColumnAllMissing, col)
			}
			stats.Medians[col] = median
			stats.Imputed[col] = fillMissing(out.Rows, out.Index(col), median)
		}
	}

	hrIdx := out.Index(domain.ColumnHeartRate)
	oxIdx := out.Index(domain.ColumnOxygenLevel)
	out.Columns = append(out.Columns, domain.ColumnStatus)
	for i, row := range out.Rows {
		hr, _ := row[hrIdx].Float()
		ox, _ := row[oxIdx].Float()
		status := Classify(hr, ox, p.thresholds)
		if status == domain.StatusCritical {
			stats.Critical++
		}
		out.Rows[i] = append(row, Present(string(status)))
	}

	p.logger.Debug("readings transformed",
		slog.Int("rows", stats.Rows),
		slog.Int("critical", stats.Critical),
		slog.Any("imputed", stats.Imputed),
		slog.Any("medians", stats.Medians))

	return out, stats, nil
}

// FitTransform runs Fit then Transform
func (p *HealthDataProcessor) FitTransform(t Table) (Table, ProcessingStats, error) {
	if err := p.Fit(t); err != nil {
		return Table{}, ProcessingStats{}, err
	}
	return p.Transform(t)
}

// dropColumn removes column from t in place, if present
func dropColumn(t Table, column string) Table {
	idx := t.Index(column)
	if idx < 0 {
		return t
	}
	t.Columns = slices.Delete(t.Columns, idx, idx+1)
	for i, row := range t.Rows {
		t.Rows[i] = slices.Delete(row, idx, idx+1)
	}
	return t
}
