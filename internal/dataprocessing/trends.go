package dataprocessing

import (
	"errors"

	"vitalscli/pkg/contracts/domain"
)

// ErrNoReadings is returned when a table has no rows to report on
var ErrNoReadings = errors.New("no readings")

// LatestTrends returns the last row of a labeled table with the direction of
// each biomarker against the row before it.
//
// A trend is three-valued, not a plain up/down flag: stable is reported when
// the two values are equal, when the table has a single row, and when either
// value is missing. Clients that only render up and down must handle
// stable explicitly.
func LatestTrends(t Table) (domain.LatestStats, error) {
	n := t.Len()
	if n == 0 {
		return domain.LatestStats{}, ErrNoReadings
	}

	records := t.Records()
	stats := domain.LatestStats{
		Latest: records[n-1],
		Trends: make(map[string]domain.Trend, len(requiredColumns)),
	}

	for _, col := range requiredColumns {
		idx := t.Index(col)
		if idx < 0 {
			continue
		}
		stats.Trends[col] = domain.TrendStable
		if n < 2 {
			continue
		}
		curr, okCurr := t.Rows[n-1][idx].Float()
		prev, okPrev := t.Rows[n-2][idx].Float()
		if !okCurr || !okPrev {
			continue
		}
		switch {
		case curr > prev:
			stats.Trends[col] = domain.TrendUp
		case curr < prev:
			stats.Trends[col] = domain.TrendDown
		}
	}

	return stats, nil
}
