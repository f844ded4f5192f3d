package dataprocessing

import (
	"errors"
	"slices"
)

var (
	// ErrNoValues is returned by Median for an empty input
	ErrNoValues = errors.New("no values")

	// ErrColumnAllMissing means a required column has no present value to impute from
	ErrColumnAllMissing = errors.New("column has no values")

	// ErrMissingColumn means a required column is absent from the header
	ErrMissingColumn = errors.New("required column missing")
)

// Median returns the middle value of values, or the mean of the two middle
// values for an even count. The input is not reordered.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrNoValues
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// presentValues collects the numeric values of a column's present cells
func presentValues(cells []Cell) []float64 {
	values := make([]float64, 0, len(cells))
	for _, c := range cells {
		if v, ok := c.Float(); ok {
			values = append(values, v)
		}
	}
	return values
}

// fillMissing replaces absent cells at column idx with value and reports how many changed
func fillMissing(rows [][]Cell, idx int, value float64) int {
	filled := 0
	for _, row := range rows {
		if row[idx].Missing {
			row[idx] = Present(value)
			filled++
		}
	}
	return filled
}
