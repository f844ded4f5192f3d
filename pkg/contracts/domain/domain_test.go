package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsContains(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name   string
		bounds Bounds
		value  float64
		want   bool
	}{
		{"heart rate at lower edge", thresholds.HeartRate, 60, true},
		{"heart rate at upper edge", thresholds.HeartRate, 100, true},
		{"heart rate below", thresholds.HeartRate, 59.9, false},
		{"heart rate above", thresholds.HeartRate, 100.1, false},
		{"oxygen at minimum", thresholds.OxygenLevel, 95, true},
		{"oxygen below minimum", thresholds.OxygenLevel, 94.99, false},
		{"oxygen has no upper bound", thresholds.OxygenLevel, 1000, true},
		{"unbounded", Bounds{}, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bounds.Contains(tt.value))
		})
	}
}

func TestDefaultThresholdsAreIndependent(t *testing.T) {
	a := DefaultThresholds()
	*a.HeartRate.Min = 10

	b := DefaultThresholds()
	assert.Equal(t, 60.0, *b.HeartRate.Min)
	assert.Nil(t, b.OxygenLevel.Max)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusCritical.IsValid())
	assert.True(t, StatusNormal.IsValid())
	assert.False(t, Status("Elevated").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestRecordMarshalJSONKeepsColumnOrder(t *testing.T) {
	rec := Record{
		Columns: []string{"timestamp", ColumnOxygenLevel, ColumnHeartRate, ColumnStatus},
		Values: map[string]any{
			ColumnHeartRate:   72.5,
			ColumnOxygenLevel: 98.0,
			"timestamp":       "08:00",
			ColumnStatus:      StatusNormal,
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"timestamp":"08:00","oxygen_level":98,"heart_rate":72.5,"status":"Normal"}`, string(data))
}

func TestRecordMarshalJSONMissingValueIsNull(t *testing.T) {
	rec := Record{
		Columns: []string{"note"},
		Values:  map[string]any{},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"note":null}`, string(data))
}

func TestSummaryMarshalOrder(t *testing.T) {
	s := Summary{
		TotalReadings: 1,
		CriticalCount: 0,
		NormalCount:   1,
		Records: []Record{{
			Columns: []string{ColumnHeartRate},
			Values:  map[string]any{ColumnHeartRate: 70.0},
		}},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"total_readings":1,"critical_count":0,"normal_count":1,"records":[{"heart_rate":70}]}`,
		string(data))
}
