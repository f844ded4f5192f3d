package validation

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vitalscli/internal/errors"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileValidator_ValidateInputFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantErr   bool
		wantType  apperrors.ErrorType
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "sensor_readings.csv")
				require.NoError(t, os.WriteFile(path, []byte("heart_rate,oxygen_level\n"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "sensor_readings.csv")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFileValidator(quietLogger()).ValidateInputFile(tt.setupFunc(t))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestFileValidator_MissingInputMatchesSentinel(t *testing.T) {
	err := NewFileValidator(nil).ValidateInputFile(filepath.Join(t.TempDir(), "sensor_readings.csv"))
	assert.True(t, errors.Is(err, apperrors.ErrInputNotFound))
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, NewFileValidator(quietLogger()).ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	err = NewFileValidator(quietLogger()).ValidateOutputDirectory(filepath.Join(blocker, "sub"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestFileValidator_ValidateExportPath(t *testing.T) {
	base := t.TempDir()
	v := NewFileValidator(quietLogger())

	tests := []struct {
		name    string
		path    string
		exts    []string
		wantErr bool
	}{
		{name: "disabled", path: "", exts: []string{".csv"}},
		{name: "csv", path: filepath.Join(base, "out", "labeled.csv"), exts: []string{".csv"}},
		{name: "upper case extension", path: filepath.Join(base, "LABELED.CSV"), exts: []string{".csv"}},
		{name: "xlsx", path: filepath.Join(base, "screening.xlsx"), exts: []string{".xlsx"}},
		{name: "wrong extension", path: filepath.Join(base, "screening.xls"), exts: []string{".xlsx"}, wantErr: true},
		{name: "no extension", path: filepath.Join(base, "screening"), exts: []string{".csv"}, wantErr: true},
		{name: "lock file", path: filepath.Join(base, "~$screening.xlsx"), exts: []string{".xlsx"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateExportPath(tt.path, tt.exts...)
			if tt.wantErr {
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := os.Stat(filepath.Join(base, "out"))
	assert.NoError(t, err, "export directory is created")
}
