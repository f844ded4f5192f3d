package dataprocessing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalscli/pkg/contracts/domain"
)

func readingsTable(readings ...domain.Reading) Table {
	return TableFromReadings(readings)
}

func statusOf(t *testing.T, table Table, row int) domain.Status {
	t.Helper()
	idx := table.Index(domain.ColumnStatus)
	require.GreaterOrEqual(t, idx, 0)
	s, ok := table.Rows[row][idx].Value.(string)
	require.True(t, ok)
	return domain.Status(s)
}

func floatAt(t *testing.T, table Table, row int, column string) float64 {
	t.Helper()
	v, ok := table.Rows[row][table.Index(column)].Float()
	require.True(t, ok, "row %d %s should be present", row, column)
	return v
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "single", values: []float64{7}, want: 7},
		{name: "odd", values: []float64{3, 1, 2}, want: 2},
		{name: "even", values: []float64{70, 150}, want: 110},
		{name: "even unsorted", values: []float64{4, 1, 3, 2}, want: 2.5},
		{name: "duplicates", values: []float64{5, 5, 5, 9}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Median(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Median(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedianEmpty(t *testing.T) {
	_, err := Median(nil)
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestClassify(t *testing.T) {
	th := domain.DefaultThresholds()

	tests := []struct {
		name string
		hr   float64
		ox   float64
		want domain.Status
	}{
		{name: "in range", hr: 70, ox: 98, want: domain.StatusNormal},
		{name: "lower bounds inclusive", hr: 60, ox: 95, want: domain.StatusNormal},
		{name: "upper bound inclusive", hr: 100, ox: 100, want: domain.StatusNormal},
		{name: "bradycardia", hr: 59.9, ox: 98, want: domain.StatusCritical},
		{name: "tachycardia", hr: 100.1, ox: 98, want: domain.StatusCritical},
		{name: "hypoxia", hr: 70, ox: 94.9, want: domain.StatusCritical},
		{name: "both out", hr: 150, ox: 80, want: domain.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.hr, tt.ox, th))
		})
	}
}

func TestTransformScreeningExample(t *testing.T) {
	input := readingsTable(
		domain.Reading{HeartRate: domain.Float(70), OxygenLevel: domain.Float(98)},
		domain.Reading{HeartRate: domain.Float(150), OxygenLevel: domain.Float(98)},
		domain.Reading{OxygenLevel: domain.Float(90)},
	)

	out, stats, err := NewHealthDataProcessor(nil).Transform(input)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.ColumnHeartRate, domain.ColumnOxygenLevel, domain.ColumnStatus}, out.Columns)
	assert.Equal(t, 110.0, floatAt(t, out, 2, domain.ColumnHeartRate))

	assert.Equal(t, domain.StatusNormal, statusOf(t, out, 0))
	assert.Equal(t, domain.StatusCritical, statusOf(t, out, 1))
	assert.Equal(t, domain.StatusCritical, statusOf(t, out, 2))

	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Critical)
	assert.Equal(t, 1, stats.Imputed[domain.ColumnHeartRate])
	assert.Equal(t, 0, stats.Imputed[domain.ColumnOxygenLevel])
	assert.Equal(t, 110.0, stats.Medians[domain.ColumnHeartRate])
	assert.Equal(t, 98.0, stats.Medians[domain.ColumnOxygenLevel])
	assert.Equal(t, 1, stats.ImputedTotal())

	summary := BuildSummary(out)
	assert.Equal(t, 3, summary.TotalReadings)
	assert.Equal(t, 2, summary.CriticalCount)
	assert.Equal(t, 1, summary.NormalCount)
}

func TestTransformImputesBeforeClassifying(t *testing.T) {
	// median oxygen is 96, so the gap is filled in range and the row stays Normal
	input := readingsTable(
		domain.Reading{HeartRate: domain.Float(72), OxygenLevel: domain.Float(96)},
		domain.Reading{HeartRate: domain.Float(80), OxygenLevel: domain.Float(99)},
		domain.Reading{HeartRate: domain.Float(75), OxygenLevel: domain.Float(90)},
		domain.Reading{HeartRate: domain.Float(65)},
	)

	out, stats, err := NewHealthDataProcessor(nil).Transform(input)
	require.NoError(t, err)

	assert.Equal(t, 96.0, floatAt(t, out, 3, domain.ColumnOxygenLevel))
	assert.Equal(t, domain.StatusNormal, statusOf(t, out, 3))
	assert.Equal(t, 1, stats.Imputed[domain.ColumnOxygenLevel])
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	input := readingsTable(
		domain.Reading{HeartRate: domain.Float(70), OxygenLevel: domain.Float(98)},
		domain.Reading{OxygenLevel: domain.Float(97)},
	)
	before := input.Clone()

	_, _, err := NewHealthDataProcessor(nil).Transform(input)
	require.NoError(t, err)

	assert.Equal(t, before, input)
}

func TestTransformKeepsExtraColumnsAndOrder(t *testing.T) {
	input, err := ParseCSV(strings.NewReader(
		"timestamp,heart_rate,patient,oxygen_level\n" +
			"t1,90,a,99\n" +
			"t2,NA,b,93\n" +
			"t3,55,c,\n"))
	require.NoError(t, err)

	out, _, err := NewHealthDataProcessor(nil).Transform(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "heart_rate", "patient", "oxygen_level", "status"}, out.Columns)
	for i, want := range []string{"t1", "t2", "t3"} {
		assert.Equal(t, want, out.Rows[i][0].Value)
	}
	assert.Equal(t, "b", out.Rows[1][2].Value)
	assert.Equal(t, 72.5, floatAt(t, out, 1, domain.ColumnHeartRate))
	assert.Equal(t, 96.0, floatAt(t, out, 2, domain.ColumnOxygenLevel))
	assert.Equal(t, domain.StatusNormal, statusOf(t, out, 0))
	assert.Equal(t, domain.StatusCritical, statusOf(t, out, 1))
	assert.Equal(t, domain.StatusCritical, statusOf(t, out, 2))
}

func TestTransformRecomputesExistingStatus(t *testing.T) {
	input, err := ParseCSV(strings.NewReader(
		"status,heart_rate,oxygen_level\n" +
			"Normal,150,98\n"))
	require.NoError(t, err)

	out, _, err := NewHealthDataProcessor(nil).Transform(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"heart_rate", "oxygen_level", "status"}, out.Columns)
	assert.Equal(t, domain.StatusCritical, statusOf(t, out, 0))
}

func TestTransformErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		input := Table{Columns: []string{domain.ColumnHeartRate}, Rows: [][]Cell{{Present(70.0)}}}

		_, _, err := NewHealthDataProcessor(nil).Transform(input)
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), domain.ColumnOxygenLevel)
	})

	t.Run("column all missing", func(t *testing.T) {
		input := readingsTable(
			domain.Reading{OxygenLevel: domain.Float(98)},
			domain.Reading{OxygenLevel: domain.Float(97)},
		)

		_, _, err := NewHealthDataProcessor(nil).Transform(input)
		require.True(t, errors.Is(err, ErrColumnAllMissing))
		assert.Contains(t, err.Error(), domain.ColumnHeartRate)
	})
}

func TestTransformEmptyTable(t *testing.T) {
	out, stats, err := NewHealthDataProcessor(nil).Transform(readingsTable())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Len())
	assert.Equal(t, domain.ColumnStatus, out.Columns[len(out.Columns)-1])
	assert.Equal(t, 0, stats.Rows)
}

func TestFitTransform(t *testing.T) {
	p := NewHealthDataProcessor(nil)
	var _ Transformer = p

	require.ErrorIs(t, p.Fit(Table{Columns: []string{"timestamp"}}), ErrMissingColumn)

	out, _, err := p.FitTransform(readingsTable(domain.Reading{HeartRate: domain.Float(61), OxygenLevel: domain.Float(95)}))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNormal, statusOf(t, out, 0))
}
