package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	apperrors "vitalscli/internal/errors"
)

const utf8BOM = "\ufeff"

// missingTokens are the cell spellings treated as absent, compared case-insensitively
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"nan":  {},
	"null": {},
	"none": {},
}

// IsMissingToken reports whether a raw cell denotes a missing value
func IsMissingToken(raw string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ParseFile loads a readings CSV from disk. A nonexistent path yields an
// error matching apperrors.ErrInputNotFound.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, apperrors.NewInputNotFoundError(filepath.Base(path), err)
		}
		return Table{}, apperrors.NewStorageError("failed to open readings file", err).
			WithContext("file", path)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			appErr.WithContext("file", path)
		}
		return Table{}, err
	}
	return table, nil
}

// ParseCSV reads a header row followed by data rows. Each column is typed
// independently: numeric when every present value parses as a float,
// otherwise kept as trimmed strings.
func ParseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, apperrors.NewParsingError("readings file is empty", nil)
	}
	if err != nil {
		return Table{}, apperrors.NewParsingError("failed to read header", err)
	}

	columns, err := normalizeHeader(header)
	if err != nil {
		return Table{}, err
	}

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, apperrors.NewParsingError("malformed row", err)
		}
		raw = append(raw, record)
	}

	return typeColumns(columns, raw)
}

func normalizeHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.NewParsingError(fmt.Sprintf("empty column name at position %d", i+1), nil)
		}
		if seen[name] {
			return nil, apperrors.NewParsingError(fmt.Sprintf("duplicate column %q", name), nil)
		}
		seen[name] = true
		columns[i] = name
	}
	return columns, nil
}

func typeColumns(columns []string, raw [][]string) (Table, error) {
	table := Table{
		Columns: columns,
		Rows:    make([][]Cell, len(raw)),
	}
	for i := range raw {
		table.Rows[i] = make([]Cell, len(columns))
	}

	for col, name := range columns {
		numeric := true
		values := make([]float64, len(raw))
		for row, record := range raw {
			cell := strings.TrimSpace(record[col])
			if IsMissingToken(cell) {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err == nil && math.IsInf(v, 0) {
				err = strconv.ErrRange
			}
			if err != nil {
				if slices.Contains(requiredColumns, name) {
					// csv line numbers count the header as line 1
					return Table{}, apperrors.NewParsingError(
						fmt.Sprintf("non-numeric %s value %q on line %d", name, cell, row+2), err).
						WithContext("column", name).
						WithContext("line", row+2)
				}
				numeric = false
				break
			}
			values[row] = v
		}

		for row, record := range raw {
			cell := strings.TrimSpace(record[col])
			switch {
			case IsMissingToken(cell):
				table.Rows[row][col] = Absent()
			case numeric:
				table.Rows[row][col] = Present(values[row])
			default:
				table.Rows[row][col] = Present(cell)
			}
		}
	}

	return table, nil
}
