// Package api contains the request and response contracts of the vitals HTTP API.
// Version v1 represents the current stable API version.
package api

import (
	"vitalscli/pkg/contracts/domain"
)

// MaxClassifyReadings bounds the number of readings accepted in one classify request
const MaxClassifyReadings = 10000

// ClassifyRequest submits readings to be imputed and classified.
// Missing measurements are sent as null or omitted.
type ClassifyRequest struct {
	Readings []domain.Reading `json:"readings" validate:"required,min=1,max=10000,dive"`
}

// ClassifyResponse is the summary document for the submitted readings,
// tagged with the run that produced it
type ClassifyResponse struct {
	RunID string `json:"run_id"`
	domain.Summary
}
