package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"vitalscli/internal/dataprocessing"
	apierrors "vitalscli/internal/errors"
	"vitalscli/internal/validation"
	api "vitalscli/pkg/contracts/api/v1"
)

// ReadingsHandler serves screening results over HTTP with RFC 7807 errors
type ReadingsHandler struct {
	service      ReadingsServiceInterface
	validator    *validation.Validator
	maxBodyBytes int64
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReadingsHandler creates a readings handler. Classify bodies larger than
// maxBodyBytes are rejected.
func NewReadingsHandler(service ReadingsServiceInterface, maxBodyBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReadingsHandler {
	return &ReadingsHandler{
		service:      service,
		validator:    validation.New(),
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With(slog.String("component", "readings_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the readings routes
func (h *ReadingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/readings/latest", h.GetLatest)
	r.Post("/readings/classify", h.Classify)

	return r
}

// GetSummary handles GET /api/summary
func (h *ReadingsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Screen(r.Context())
	if err != nil {
		h.fail(w, r, "failed to screen readings", err)
		return
	}

	render.JSON(w, r, result.Summary)
}

// GetLatest handles GET /api/readings/latest
func (h *ReadingsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := h.service.Latest(r.Context())
	if err != nil {
		h.fail(w, r, "failed to compute latest reading", err)
		return
	}

	render.JSON(w, r, latest)
}

// Classify handles POST /api/readings/classify
func (h *ReadingsHandler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req api.ClassifyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusRequestEntityTooLarge,
				"PAYLOAD_TOO_LARGE",
				"Request body exceeds maximum allowed size",
				map[string]interface{}{"max_size": tooLarge.Limit},
			))
		case errors.Is(err, io.EOF):
			h.errorHandler.HandleError(w, r, apierrors.New(
				http.StatusBadRequest, "INVALID_REQUEST", "Request body is empty"))
		default:
			h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		}
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.ProcessReadings(r.Context(), req.Readings)
	if err != nil {
		h.fail(w, r, "failed to classify readings", err)
		return
	}

	h.logger.InfoContext(r.Context(), "readings classified",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("run_id", result.RunID),
		slog.Int("total", result.Summary.TotalReadings),
		slog.Int("critical", result.Summary.CriticalCount),
	)

	render.JSON(w, r, api.ClassifyResponse{
		RunID:   result.RunID,
		Summary: result.Summary,
	})
}

// fail maps screening errors onto API errors
func (h *ReadingsHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	switch {
	case errors.Is(err, dataprocessing.ErrNoReadings):
		h.errorHandler.HandleError(w, r, apierrors.ErrNotFound.WithMessage("No readings available"))
	case errors.Is(err, dataprocessing.ErrColumnAllMissing),
		errors.Is(err, dataprocessing.ErrMissingColumn):
		h.errorHandler.HandleError(w, r, apierrors.UnprocessableReadings(err))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
