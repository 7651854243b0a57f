package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/geocode"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var statusErr *geocode.StatusError
	if errors.As(err, &statusErr) {
		BadRequest(w, "Geocoding failed: "+statusErr.Status)
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrContactExists):
		Conflict(w, "Contact already registered")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidGranularity):
		BadRequest(w, "Invalid report type")
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Error generating report")

	// Geocode domain errors
	case errors.Is(err, geocode.ErrMissingCoordinates):
		BadRequest(w, "Missing latitude or longitude parameters")
	case errors.Is(err, geocode.ErrInvalidCoordinates):
		BadRequest(w, "Invalid latitude or longitude")
	case errors.Is(err, geocode.ErrUnavailable):
		InternalServerError(w, "Geocoding service unavailable")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
