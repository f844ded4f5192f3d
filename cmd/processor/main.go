package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vitalscli/internal/config"
	"vitalscli/internal/dataprocessing"
	apperrors "vitalscli/internal/errors"
	"vitalscli/internal/exporter"
	"vitalscli/internal/infrastructure"
	"vitalscli/internal/services"
	"vitalscli/internal/validation"
	"vitalscli/pkg/contracts"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run screens the readings file and prints the summary document to stdout.
// Logs and spans go to stderr. A missing input file is reported on stdout
// and is not a failure.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("processor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "readings CSV to process (defaults to input.path, sensor_readings.csv)")
	csvPath := fs.String("csv", "", "also write the labeled readings as CSV to this path")
	xlsxPath := fs.String("xlsx", "", "also write the labeled readings as an Excel workbook to this path")
	configPath := fs.String("config", "", "YAML config file (defaults to config.yaml or configs/config.yaml)")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		info := contracts.GetVersionInfo()
		fmt.Fprintf(stdout, "%s (%s, %s/%s, commit %s, built %s)\n",
			contracts.GetVersionString(), info.GoVersion, info.OS, info.Architecture, info.GitCommit, info.BuildTime)
		return 0
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *inPath != "" {
		cfg.Input.Path = *inPath
	}
	if *csvPath != "" {
		cfg.Export.CSVPath = *csvPath
	}
	if *xlsxPath != "" {
		cfg.Export.XLSXPath = *xlsxPath
	}

	logger, err := infrastructure.NewLoggerTo(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithTraceID(context.Background(), infrastructure.GenerateTraceID())

	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, contracts.Version, stderr, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize OpenTelemetry", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.WarnContext(ctx, "Failed to flush telemetry", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.NewPipelineMetrics(providers.Meter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create pipeline metrics", slog.String("error", err.Error()))
		return 1
	}

	files := validation.NewFileValidator(logger)
	if err := files.ValidateExportPath(cfg.Export.CSVPath, ".csv"); err != nil {
		logger.ErrorContext(ctx, "Invalid CSV export path", slog.String("error", err.Error()))
		return 1
	}
	if err := files.ValidateExportPath(cfg.Export.XLSXPath, ".xlsx"); err != nil {
		logger.ErrorContext(ctx, "Invalid Excel export path", slog.String("error", err.Error()))
		return 1
	}

	logger.InfoContext(ctx, "Starting screening run",
		slog.String("input", cfg.Input.Path),
		slog.String("version", contracts.Version))

	svc := services.NewReadingsService(cfg.Input.Path, providers.Tracer, metrics, logger)
	result, err := svc.Screen(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrInputNotFound) {
			fmt.Fprintf(stdout, "Error: %s.\n", missingInputMessage(err, cfg.Input.Path))
			return 0
		}
		logger.ErrorContext(ctx, "Screening failed", slog.String("error", err.Error()))
		return 1
	}

	if err := writeExports(ctx, cfg.Export, result, providers.Tracer, logger); err != nil {
		logger.ErrorContext(ctx, "Export failed", slog.String("error", err.Error()))
		return 1
	}

	if err := dataprocessing.ExportSummary(stdout, result.Summary); err != nil {
		logger.ErrorContext(ctx, "Failed to write summary", slog.String("error", err.Error()))
		return 1
	}

	logger.InfoContext(ctx, "Screening run complete",
		slog.String("run_id", result.RunID),
		slog.Int("total", result.Summary.TotalReadings),
		slog.Int("critical", result.Summary.CriticalCount),
		slog.Int("imputed", result.Stats.ImputedTotal()))
	return 0
}

// missingInputMessage names the missing file without its directory
func missingInputMessage(err error, path string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fmt.Sprintf("%s not found", path)
}

// writeExports writes the configured CSV and Excel files. Empty paths are skipped.
func writeExports(ctx context.Context, cfg config.ExportConfig, result *services.ScreeningResult, tracer trace.Tracer, logger *slog.Logger) error {
	if cfg.CSVPath != "" {
		err := traced(ctx, tracer, "export.csv", cfg.CSVPath, func() error {
			return exporter.NewCSVWriter(logger).WriteTable(cfg.CSVPath, result.Table, cfg.BOMPrefix)
		})
		if err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}

	if cfg.XLSXPath != "" {
		err := traced(ctx, tracer, "export.xlsx", cfg.XLSXPath, func() error {
			return exporter.NewXLSXExporter(logger).Export(cfg.XLSXPath, result.Table, result.Summary)
		})
		if err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}
	return nil
}

// traced runs fn inside a span named name
func traced(ctx context.Context, tracer trace.Tracer, name, path string, fn func() error) error {
	_, span := tracer.Start(ctx, name, trace.WithAttributes(attribute.String("file", path)))
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
