package dataprocessing

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalscli/pkg/contracts/domain"
)

const screeningCSV = "heart_rate,oxygen_level\n70,98\n150,98\n,90\n"

const screeningSummary = `{
  "total_readings": 3,
  "critical_count": 2,
  "normal_count": 1,
  "records": [
    {
      "heart_rate": 70,
      "oxygen_level": 98,
      "status": "Normal"
    },
    {
      "heart_rate": 150,
      "oxygen_level": 98,
      "status": "Critical"
    },
    {
      "heart_rate": 110,
      "oxygen_level": 90,
      "status": "Critical"
    }
  ]
}
`

func runScreening(t *testing.T, csv string) domain.Summary {
	t.Helper()
	table, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	out, _, err := NewHealthDataProcessor(nil).Transform(table)
	require.NoError(t, err)
	return BuildSummary(out)
}

func TestExportSummaryDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportSummary(&buf, runScreening(t, screeningCSV)))

	assert.Equal(t, screeningSummary, buf.String())
}

func TestExportSummaryIsDeterministic(t *testing.T) {
	csv := "patient,heart_rate,ward,oxygen_level\np1,70,A,98\np2,,B,\np3,101,C,99\n"

	var first, second bytes.Buffer
	require.NoError(t, ExportSummary(&first, runScreening(t, csv)))
	require.NoError(t, ExportSummary(&second, runScreening(t, csv)))

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.True(t, strings.Index(first.String(), `"patient"`) < strings.Index(first.String(), `"ward"`))
}

func TestBuildSummaryCountsAddUp(t *testing.T) {
	csv := "heart_rate,oxygen_level\n" +
		"59,99\n60,95\n100,100\n101,96\n75,94\n,\n88,NA\n"

	summary := runScreening(t, csv)

	assert.Equal(t, 7, summary.TotalReadings)
	assert.Equal(t, summary.TotalReadings, summary.CriticalCount+summary.NormalCount)
	assert.Len(t, summary.Records, 7)
	for _, r := range summary.Records {
		status, ok := r.Values[domain.ColumnStatus]
		require.True(t, ok)
		assert.True(t, domain.Status(status.(string)).IsValid())
	}
}

func TestExportSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportSummary(&buf, BuildSummary(Table{})))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 0, decoded["total_readings"])
	assert.Equal(t, []any{}, decoded["records"])
}

func TestBuildSummaryUnlabeledTable(t *testing.T) {
	summary := BuildSummary(readingsTable(domain.Reading{HeartRate: domain.Float(70), OxygenLevel: domain.Float(98)}))

	assert.Equal(t, 1, summary.TotalReadings)
	assert.Zero(t, summary.CriticalCount)
	assert.Zero(t, summary.NormalCount)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExportSummaryWriteError(t *testing.T) {
	err := ExportSummary(failingWriter{}, runScreening(t, screeningCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLatestTrends(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want map[string]domain.Trend
	}{
		{
			name: "up and down",
			csv:  "heart_rate,oxygen_level\n70,98\n80,96\n",
			want: map[string]domain.Trend{"heart_rate": domain.TrendUp, "oxygen_level": domain.TrendDown},
		},
		{
			name: "equal values are stable",
			csv:  "heart_rate,oxygen_level\n70,98\n70,98\n",
			want: map[string]domain.Trend{"heart_rate": domain.TrendStable, "oxygen_level": domain.TrendStable},
		},
		{
			name: "single row",
			csv:  "heart_rate,oxygen_level\n70,98\n",
			want: map[string]domain.Trend{"heart_rate": domain.TrendStable, "oxygen_level": domain.TrendStable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseCSV(strings.NewReader(tt.csv))
			require.NoError(t, err)
			out, _, err := NewHealthDataProcessor(nil).Transform(table)
			require.NoError(t, err)

			stats, err := LatestTrends(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stats.Trends)

			status, ok := stats.Latest.Values[domain.ColumnStatus]
			require.True(t, ok)
			assert.NotEmpty(t, status)
		})
	}
}

func TestLatestTrendsMissingValueIsStable(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("heart_rate,oxygen_level\n70,98\n,99\n"))
	require.NoError(t, err)

	stats, err := LatestTrends(table)
	require.NoError(t, err)
	assert.Equal(t, domain.TrendStable, stats.Trends["heart_rate"])
	assert.Equal(t, domain.TrendUp, stats.Trends["oxygen_level"])
}

func TestLatestTrendsEmpty(t *testing.T) {
	_, err := LatestTrends(Table{Columns: []string{"heart_rate", "oxygen_level", "status"}})
	assert.ErrorIs(t, err, ErrNoReadings)
}
