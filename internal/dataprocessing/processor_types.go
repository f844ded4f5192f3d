package dataprocessing

import "vitalscli/pkg/contracts/domain"

// Transformer fits on a readings table and produces the labeled table
type Transformer interface {
	Fit(t Table) error
	Transform(t Table) (Table, ProcessingStats, error)
}

// ProcessingStats describes what a transform did
type ProcessingStats struct {
	Rows     int                `json:"rows"`
	Critical int                `json:"critical"`
	Imputed  map[string]int     `json:"imputed"`
	Medians  map[string]float64 `json:"medians"`
}

// ImputedTotal is the number of cells filled across all columns
func (s ProcessingStats) ImputedTotal() int {
	total := 0
	for _, n := range s.Imputed {
		total += n
	}
	return total
}

// requiredColumns are imputed and classified, in this order
var requiredColumns = []string{domain.ColumnHeartRate, domain.ColumnOxygenLevel}
