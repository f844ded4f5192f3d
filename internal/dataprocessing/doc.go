// Package dataprocessing turns raw biomarker readings into a labeled
// screening table and summarises it.
//
// # Components
//
//  1. Parser: reads a readings CSV into a Table, typing each column
//  2. Processor: imputes missing heart_rate and oxygen_level values with the
//     column median and appends a Critical/Normal status column
//  3. Summarizer: counts the labels and serialises the summary document
//
// # Usage
//
//	table, err := dataprocessing.ParseFile("sensor_readings.csv")
//	if err != nil {
//	    return err
//	}
//
//	processor := dataprocessing.NewHealthDataProcessor(logger)
//	labeled, stats, err := processor.Transform(table)
//	if err != nil {
//	    return err
//	}
//
//	summary := dataprocessing.BuildSummary(labeled)
//	err = dataprocessing.ExportSummary(os.Stdout, summary)
//
// # Data Flow
//
//	CSV → Parser → Table → Processor → labeled Table → Summarizer → JSON
//
// # Error Handling
//
// A missing readings file matches errors.ErrInputNotFound. Malformed rows and
// non-numeric biomarker values are PARSING errors. A required column that is
// absent or has no values at all yields ErrMissingColumn or
// ErrColumnAllMissing.
package dataprocessing
