package geocode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ReverseGeocodeRequest struct {
	Latitude  float64
	Longitude float64
}

// ParseReverseGeocodeRequest reads the raw lat/lon query values.
func ParseReverseGeocodeRequest(lat, lon string) (ReverseGeocodeRequest, error) {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return ReverseGeocodeRequest{}, ErrMissingCoordinates
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return ReverseGeocodeRequest{}, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, lat)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return ReverseGeocodeRequest{}, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, lon)
	}

	if !validator.IsValidLatitude(latitude) || !validator.IsValidLongitude(longitude) {
		return ReverseGeocodeRequest{}, ErrInvalidCoordinates
	}

	return ReverseGeocodeRequest{Latitude: latitude, Longitude: longitude}, nil
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Result struct {
	PlaceName         string             `json:"placeName"`
	AddressComponents []AddressComponent `json:"addressComponents,omitempty"`
	Coordinates       Coordinates        `json:"coordinates"`
	Message           string             `json:"message,omitempty"`
	Provider          string             `json:"provider,omitempty"`
}

type ReverseGeocodeResponse struct {
	Success bool `json:"success"`
	Result
	Location string `json:"location"`
}

func ToResponse(res Result) ReverseGeocodeResponse {
	return ReverseGeocodeResponse{
		Success:  true,
		Result:   res,
		Location: res.PlaceName,
	}
}

// CoordinatePlaceName is the last-resort name used when no provider answers.
func CoordinatePlaceName(lat, lon float64) string {
	return fmt.Sprintf("Coords: %s, %s", formatCoord(lat), formatCoord(lon))
}

// UnknownPlaceName is used when a provider answers but has no address.
func UnknownPlaceName(lat, lon float64) string {
	return fmt.Sprintf("Location: %s, %s", formatCoord(lat), formatCoord(lon))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
