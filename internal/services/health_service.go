package services

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	apperrors "vitalscli/internal/errors"
	"vitalscli/internal/validation"
	"vitalscli/pkg/contracts"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	inputPath string
	files     *validation.FileValidator
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a health service watching the readings file at inputPath
func NewHealthService(version, inputPath string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("input_path", inputPath))

	return &HealthService{
		version:   version,
		inputPath: inputPath,
		files:     validation.NewFileValidator(logger),
		startTime: time.Now(),
		logger:    logger,
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("version", hs.version),
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck reports ready once the readings file can be read
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services:  make(map[string]interface{}),
	}

	input := ServiceHealth{Status: "ready"}
	if err := hs.files.ValidateInputFile(hs.inputPath); err != nil {
		input = ServiceHealth{Status: "not_ready", Message: readinessMessage(err)}
		status.Status = "not_ready"
	}
	status.Services["input"] = input

	return status
}

// readinessMessage describes an input failure without the server-side path
func readinessMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.Is(err, apperrors.ErrInputNotFound) && errors.As(err, &appErr) {
		return appErr.Message
	}
	return "readings file is not readable"
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	info := contracts.GetVersionInfo()
	result := map[string]interface{}{
		"version":             hs.version,
		"api_version":         info.APIVersion,
		"data_format_version": info.DataFormat,
		"go_version":          runtime.Version(),
		"os":                  runtime.GOOS,
		"arch":                runtime.GOARCH,
		"uptime":              time.Since(hs.startTime).Seconds(),
		"start_time":          hs.startTime.Format(time.RFC3339),
	}

	if info.BuildTime != "unknown" {
		result["build_time"] = info.BuildTime
	}
	if info.GitCommit != "unknown" {
		result["git_commit"] = info.GitCommit
	}

	return result
}
