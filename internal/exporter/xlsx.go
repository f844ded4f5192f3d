package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vitalscli/internal/dataprocessing"
	"vitalscli/pkg/contracts/domain"
)

// Sheet names of the screening workbook
const (
	ReadingsSheet = "Readings"
	SummarySheet  = "Summary"
)

// criticalFill is the background of Critical rows on the Readings sheet
const criticalFill = "#F8CBAD"

// XLSXExporter writes a screening workbook: every labeled reading on one
// sheet with Critical rows highlighted, and the counts on a second sheet.
type XLSXExporter struct {
	logger *slog.Logger
}

// NewXLSXExporter creates a workbook exporter
func NewXLSXExporter(logger *slog.Logger) *XLSXExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXExporter{logger: logger}
}

// Export saves the workbook for a labeled table to filePath
func (e *XLSXExporter) Export(filePath string, t dataprocessing.Table, s domain.Summary) error {
	f, err := e.build(t, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("Wrote screening workbook",
		slog.String("file_path", filePath),
		slog.Int("rows", t.Len()))
	return nil
}

// WriteTo streams the workbook for a labeled table to w
func (e *XLSXExporter) WriteTo(w io.Writer, t dataprocessing.Table, s domain.Summary) error {
	f, err := e.build(t, s)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *XLSXExporter) build(t dataprocessing.Table, s domain.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), ReadingsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name readings sheet: %w", err)
	}
	if err := writeReadingsSheet(f, t); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, s); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeReadingsSheet(f *excelize.File, t dataprocessing.Table) error {
	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(ReadingsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	criticalStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{criticalFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	if len(t.Columns) == 0 {
		return nil
	}
	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ReadingsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	statusIdx := t.Index(domain.ColumnStatus)
	for i, row := range t.Rows {
		rowNum := i + 2
		values := make([]any, len(row))
		for j, c := range row {
			if !c.Missing {
				values[j] = c.Value
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ReadingsSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		if statusIdx >= 0 && row[statusIdx].Value == string(domain.StatusCritical) {
			if err := f.SetCellStyle(ReadingsSheet, cell, fmt.Sprintf("%s%d", lastCol, rowNum), criticalStyle); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(ReadingsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummarySheet(f *excelize.File, s domain.Summary) error {
	rows := [][]any{
		{"total_readings", s.TotalReadings},
		{"critical_count", s.CriticalCount},
		{"normal_count", s.NormalCount},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 18)
}
