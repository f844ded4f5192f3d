package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"vitalscli/internal/dataprocessing"
	"vitalscli/internal/infrastructure"
	"vitalscli/internal/validation"
	"vitalscli/pkg/contracts/domain"
)

// Run sources reported to metrics
const (
	SourceFile = "file"
	SourceAPI  = "api"
)

// ScreeningResult is the outcome of one screening run
type ScreeningResult struct {
	RunID   string
	Table   dataprocessing.Table
	Summary domain.Summary
	Stats   dataprocessing.ProcessingStats
}

// ReadingsService runs the screening pipeline over the configured readings
// file or over readings submitted directly. Each call is an independent run.
type ReadingsService struct {
	inputPath string
	processor dataprocessing.Transformer
	files     *validation.FileValidator
	tracer    trace.Tracer
	metrics   *infrastructure.PipelineMetrics
	logger    *slog.Logger
}

// NewReadingsService creates a readings service. tracer and metrics may be nil.
func NewReadingsService(inputPath string, tracer trace.Tracer, metrics *infrastructure.PipelineMetrics, logger *slog.Logger) *ReadingsService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer(infrastructure.MeterName)
	}
	logger = infrastructure.WithComponent(logger, "readings_service")

	return &ReadingsService{
		inputPath: inputPath,
		processor: dataprocessing.NewHealthDataProcessor(logger),
		files:     validation.NewFileValidator(logger),
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
	}
}

// InputPath returns the configured readings file
func (s *ReadingsService) InputPath() string {
	return s.inputPath
}

// Screen processes the configured readings file
func (s *ReadingsService) Screen(ctx context.Context) (*ScreeningResult, error) {
	return s.ProcessFile(ctx, s.inputPath)
}

// ProcessFile parses, imputes and classifies the readings in path
func (s *ReadingsService) ProcessFile(ctx context.Context, path string) (*ScreeningResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "screening.run",
		trace.WithAttributes(
			attribute.String("source", SourceFile),
			attribute.String("file", path),
		))
	defer span.End()

	table, err := s.parse(ctx, path)
	if err != nil {
		return nil, s.fail(ctx, span, SourceFile, start, err)
	}

	result, err := s.transform(ctx, table)
	if err != nil {
		return nil, s.fail(ctx, span, SourceFile, start, err)
	}

	s.succeed(ctx, span, SourceFile, start, result)
	return result, nil
}

// ProcessReadings imputes and classifies readings submitted in memory
func (s *ReadingsService) ProcessReadings(ctx context.Context, readings []domain.Reading) (*ScreeningResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "screening.run",
		trace.WithAttributes(
			attribute.String("source", SourceAPI),
			attribute.Int("readings", len(readings)),
		))
	defer span.End()

	result, err := s.transform(ctx, dataprocessing.TableFromReadings(readings))
	if err != nil {
		return nil, s.fail(ctx, span, SourceAPI, start, err)
	}

	s.succeed(ctx, span, SourceAPI, start, result)
	return result, nil
}

// Latest screens the configured file and reports its newest reading with trends
func (s *ReadingsService) Latest(ctx context.Context) (domain.LatestStats, error) {
	result, err := s.Screen(ctx)
	if err != nil {
		return domain.LatestStats{}, err
	}
	return dataprocessing.LatestTrends(result.Table)
}

func (s *ReadingsService) parse(ctx context.Context, path string) (dataprocessing.Table, error) {
	_, span := s.tracer.Start(ctx, "screening.parse")
	defer span.End()

	if err := s.files.ValidateInputFile(path); err != nil {
		recordSpanError(span, err)
		return dataprocessing.Table{}, err
	}

	table, err := dataprocessing.ParseFile(path)
	if err != nil {
		recordSpanError(span, err)
		return dataprocessing.Table{}, err
	}

	span.SetAttributes(
		attribute.Int("rows", table.Len()),
		attribute.StringSlice("columns", table.Columns),
	)
	return table, nil
}

func (s *ReadingsService) transform(ctx context.Context, table dataprocessing.Table) (*ScreeningResult, error) {
	_, span := s.tracer.Start(ctx, "screening.transform")
	defer span.End()

	labeled, stats, err := s.processor.Transform(table)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("rows", stats.Rows),
		attribute.Int("critical", stats.Critical),
		attribute.Int("imputed", stats.ImputedTotal()),
	)

	return &ScreeningResult{
		RunID:   infrastructure.GetTraceID(ctx),
		Table:   labeled,
		Summary: dataprocessing.BuildSummary(labeled),
		Stats:   stats,
	}, nil
}

func (s *ReadingsService) succeed(ctx context.Context, span trace.Span, source string, start time.Time, result *ScreeningResult) {
	elapsed := time.Since(start)
	s.metrics.RecordRun(ctx, infrastructure.RunOutcome{
		Source:   source,
		Total:    result.Summary.TotalReadings,
		Critical: result.Summary.CriticalCount,
		Imputed:  result.Stats.Imputed,
		Elapsed:  elapsed,
	})
	span.SetStatus(codes.Ok, "")

	s.logger.InfoContext(ctx, "screening completed",
		slog.String("source", source),
		slog.Int("total_readings", result.Summary.TotalReadings),
		slog.Int("critical_count", result.Summary.CriticalCount),
		slog.Int("normal_count", result.Summary.NormalCount),
		slog.Any("imputed", result.Stats.Imputed),
		slog.Duration("duration", elapsed))
}

func (s *ReadingsService) fail(ctx context.Context, span trace.Span, source string, start time.Time, err error) error {
	s.metrics.RecordRun(ctx, infrastructure.RunOutcome{
		Source:  source,
		Elapsed: time.Since(start),
		Err:     err,
	})
	recordSpanError(span, err)

	s.logger.WarnContext(ctx, "screening failed",
		slog.String("source", source),
		slog.String("error", err.Error()))
	return err
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
