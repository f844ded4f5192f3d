package http

import (
	"context"

	"vitalscli/internal/services"
	"vitalscli/pkg/contracts/domain"
)

// ReadingsServiceInterface defines the screening operations the API exposes
type ReadingsServiceInterface interface {
	Screen(ctx context.Context) (*services.ScreeningResult, error)
	ProcessReadings(ctx context.Context, readings []domain.Reading) (*services.ScreeningResult, error)
	Latest(ctx context.Context) (domain.LatestStats, error)
}
