package geocode

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCoordinates = errors.New("missing latitude or longitude parameters")
	ErrInvalidCoordinates = errors.New("latitude or longitude is out of range")
	ErrProviderRejected   = errors.New("geocoding provider rejected the request")
	ErrUnavailable        = errors.New("geocoding service unavailable")
	ErrNotConfigured      = errors.New("geocoding provider not configured")
)

// StatusError carries the status a provider answered with. It matches
// ErrProviderRejected under errors.Is.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("geocoding failed: %s", e.Status)
	}
	return fmt.Sprintf("geocoding failed: %s (%s)", e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrProviderRejected
}
