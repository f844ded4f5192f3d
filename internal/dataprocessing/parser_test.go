package dataprocessing

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vitalscli/internal/errors"
)

func TestParseCSV(t *testing.T) {
	input := "timestamp,heart_rate,oxygen_level\n" +
		"2024-01-01T08:00,70,98\n" +
		"2024-01-01T08:05,,97.5\n" +
		"2024-01-01T08:10,NaN,null\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "heart_rate", "oxygen_level"}, table.Columns)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, Present("2024-01-01T08:00"), table.Rows[0][0])
	assert.Equal(t, Present(70.0), table.Rows[0][1])
	assert.Equal(t, Present(98.0), table.Rows[0][2])
	assert.True(t, table.Rows[1][1].Missing)
	assert.Equal(t, Present(97.5), table.Rows[1][2])
	assert.True(t, table.Rows[2][1].Missing)
	assert.True(t, table.Rows[2][2].Missing)
}

func TestParseCSVMissingTokens(t *testing.T) {
	for _, token := range []string{"", " ", "NA", "na", "NaN", "nan", "NULL", "null", "None", "none"} {
		assert.True(t, IsMissingToken(token), "%q should be missing", token)
	}
	for _, token := range []string{"0", "n/a", "-", "missing"} {
		assert.False(t, IsMissingToken(token), "%q should be present", token)
	}
}

func TestParseCSVHeaderNormalization(t *testing.T) {
	input := "\ufeff heart_rate , oxygen_level\n72,99\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"heart_rate", "oxygen_level"}, table.Columns)
}

func TestParseCSVColumnTyping(t *testing.T) {
	input := "patient,heart_rate,oxygen_level,ward\n" +
		"p1,70,98,12\n" +
		"p2,80,97,B\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Present("p1"), table.Rows[0][0])
	assert.Equal(t, Present("12"), table.Rows[0][3], "mixed column stays textual")
	assert.Equal(t, Present("B"), table.Rows[1][3])
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "ragged row", input: "heart_rate,oxygen_level\n70\n"},
		{name: "non-numeric heart rate", input: "heart_rate,oxygen_level\nfast,98\n"},
		{name: "infinite oxygen level", input: "heart_rate,oxygen_level\n70,Inf\n"},
		{name: "duplicate column", input: "heart_rate,heart_rate\n70,70\n"},
		{name: "blank column name", input: "heart_rate,,oxygen_level\n70,1,98\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing), "got %v", err)
		})
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("heart_rate,oxygen_level\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Len(t, table.Columns, 2)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensor_readings.csv")
	require.NoError(t, os.WriteFile(path, []byte("heart_rate,oxygen_level\n65,96\n"), 0644))

	table, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "sensor_readings.csv"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, apperrors.ErrInputNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "sensor_readings.csv", appErr.Context["file"])
}

func TestParseFileAttachesPathToParsingErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("heart_rate,oxygen_level\nx,98\n"), 0644))

	_, err := ParseFile(path)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, path, appErr.Context["file"])
	assert.Equal(t, "heart_rate", appErr.Context["column"])
	assert.Equal(t, 2, appErr.Context["line"])
}
