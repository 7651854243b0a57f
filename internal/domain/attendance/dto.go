package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string   `json:"employeeId"`
	Email      string   `json:"email"`
	Timestamp  *string  `json:"timestamp,omitempty"` // RFC3339, defaults to now
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	PlaceName  *string  `json:"placeName,omitempty"`

	// Parsed by Validate
	ParsedTimestamp *time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.EmployeeID) && validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId or email is required",
		})
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		ts, valid := validator.IsValidDateTime(*r.Timestamp)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		} else {
			r.ParsedTimestamp = &ts
		}
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasCoordinates reports whether the caller sent a position.
func (r *MarkAttendanceRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
