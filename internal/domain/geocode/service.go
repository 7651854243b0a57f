package geocode

import "context"

// GeocodeService turns coordinates into a human readable place name.
type GeocodeService interface {
	ReverseGeocode(ctx context.Context, req ReverseGeocodeRequest) (Result, error)
}
