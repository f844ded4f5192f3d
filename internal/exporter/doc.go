// Package exporter writes labeled screening tables to files.
//
// CSVWriter: CSV output with an optional UTF-8 BOM for Excel compatibility.
// Numbers are written with two decimal places and missing cells are empty.
//
// XLSXExporter: a workbook with a Readings sheet, Critical rows highlighted,
// and a Summary sheet holding the counts.
//
// Example usage:
//
//	csvWriter := exporter.NewCSVWriter(logger)
//	err := csvWriter.WriteTable("out/labeled.csv", labeled, true)
//
//	xlsx := exporter.NewXLSXExporter(logger)
//	err = xlsx.Export("out/screening.xlsx", labeled, summary)
package exporter
