package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/geocode"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "email is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND", "Employee not found"},
		{"duplicate email", employee.ErrEmailExists, http.StatusConflict, "CONFLICT", "Email already registered"},
		{"duplicate contact", employee.ErrContactExists, http.StatusConflict, "CONFLICT", "Contact already registered"},
		{"invalid report type", report.ErrInvalidGranularity, http.StatusBadRequest, "BAD_REQUEST", "Invalid report type"},
		{"report failure", fmt.Errorf("%w: boom", report.ErrReportGenerationFailed), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Error generating report"},
		{"provider rejected", &geocode.StatusError{Status: "OVER_QUERY_LIMIT"}, http.StatusBadRequest, "BAD_REQUEST", "Geocoding failed: OVER_QUERY_LIMIT"},
		{"missing coords", geocode.ErrMissingCoordinates, http.StatusBadRequest, "BAD_REQUEST", "Missing latitude or longitude parameters"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, c.wantCode, body.Code)
			assert.Equal(t, c.wantMessage, body.Message)
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "email", Message: "email is required"}})

	assert.JSONEq(t, `{"success":false,"code":"VALIDATION_ERROR","message":"Validation failed","details":{"email":"email is required"}}`, rec.Body.String())
}
