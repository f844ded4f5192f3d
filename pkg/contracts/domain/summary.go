package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one labeled row keyed by column name.
// Keys are emitted in column order when marshaled, so identical tables
// always produce identical documents.
type Record struct {
	Columns []string
	Values  map[string]any
}

// MarshalJSON writes the record as an object with keys in column order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, fmt.Errorf("marshal column %s: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summary is the aggregate exported after a screening run
type Summary struct {
	TotalReadings int      `json:"total_readings"`
	CriticalCount int      `json:"critical_count"`
	NormalCount   int      `json:"normal_count"`
	Records       []Record `json:"records"`
}

// Trend describes the direction of a biomarker between the two most recent readings
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// LatestStats is the newest reading with its trend against the previous one
type LatestStats struct {
	Latest Record           `json:"latest"`
	Trends map[string]Trend `json:"trends"`
}
