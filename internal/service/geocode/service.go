package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/geocode"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/maps"
)

const (
	providerGoogle    = "google"
	providerNominatim = "nominatim"

	nearbyRadiusMeters = 50
	noAddressMessage   = "No address found for these coordinates"
)

// GoogleAPI is the subset of the Google Maps web services the geocoder uses.
type GoogleAPI interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (maps.GeocodeResponse, error)
	NearbySearch(ctx context.Context, lat, lon float64, radius int) (maps.PlacesResponse, error)
}

type NominatimAPI interface {
	Reverse(ctx context.Context, lat, lon float64) (maps.NominatimResult, error)
}

type GeocodeServiceImpl struct {
	google    GoogleAPI
	nominatim NominatimAPI
	cache     cache.Cache
	cacheTTL  time.Duration
}

// NewGeocodeService wires the provider cascade. Either provider may be nil;
// with both nil every lookup fails with geocode.ErrUnavailable.
func NewGeocodeService(google GoogleAPI, nominatim NominatimAPI, c cache.Cache, cacheTTL time.Duration) geocode.GeocodeService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &GeocodeServiceImpl{
		google:    google,
		nominatim: nominatim,
		cache:     c,
		cacheTTL:  cacheTTL,
	}
}

// ReverseGeocode implements geocode.GeocodeService.
func (s *GeocodeServiceImpl) ReverseGeocode(ctx context.Context, req geocode.ReverseGeocodeRequest) (geocode.Result, error) {
	key := cacheKey(req)
	if res, ok := s.cached(ctx, key); ok {
		return res, nil
	}

	var lastErr error

	if s.google != nil {
		res, err := s.fromGoogle(ctx, req)
		if err == nil {
			s.store(ctx, key, res)
			return res, nil
		}
		if errors.Is(err, geocode.ErrProviderRejected) {
			slog.Warn("Google geocoding rejected request", "lat", req.Latitude, "lon", req.Longitude, "error", err)
			return geocode.Result{}, err
		}
		slog.Warn("Google geocoding failed, falling back", "error", err)
		lastErr = err
	}

	if s.nominatim != nil {
		res, err := s.fromNominatim(ctx, req)
		if err == nil {
			s.store(ctx, key, res)
			return res, nil
		}
		slog.Warn("Nominatim geocoding failed", "error", err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = geocode.ErrNotConfigured
	}
	return geocode.Result{}, fmt.Errorf("%w: %w", geocode.ErrUnavailable, lastErr)
}

func (s *GeocodeServiceImpl) fromGoogle(ctx context.Context, req geocode.ReverseGeocodeRequest) (geocode.Result, error) {
	resp, err := s.google.ReverseGeocode(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return geocode.Result{}, err
	}

	switch {
	case resp.Status == maps.StatusOK && len(resp.Results) > 0:
		first := resp.Results[0]
		placeName := first.FormattedAddress
		if strings.Contains(placeName, "+") {
			placeName = s.nearbyPlaceName(ctx, req, first)
		}
		return geocode.Result{
			PlaceName:         placeName,
			AddressComponents: toAddressComponents(first.AddressComponents),
			Coordinates:       coordinates(req),
			Provider:          providerGoogle,
		}, nil

	case resp.Status == maps.StatusOK, resp.Status == maps.StatusZeroResults:
		return noAddress(req, providerGoogle), nil

	default:
		return geocode.Result{}, &geocode.StatusError{Status: resp.Status, Message: resp.ErrorMessage}
	}
}

// nearbyPlaceName replaces a plus-code address with the closest named place,
// its vicinity and the surrounding area. Any failure keeps the plus code.
func (s *GeocodeServiceImpl) nearbyPlaceName(ctx context.Context, req geocode.ReverseGeocodeRequest, result maps.GeocodeResult) string {
	places, err := s.google.NearbySearch(ctx, req.Latitude, req.Longitude, nearbyRadiusMeters)
	if err != nil {
		slog.Warn("Nearby place lookup failed", "error", err)
		return result.FormattedAddress
	}
	if places.Status != maps.StatusOK || len(places.Results) == 0 {
		return result.FormattedAddress
	}

	closest := places.Results[0]
	name := closest.Name
	if closest.Vicinity != "" {
		name += ", " + closest.Vicinity
	}

	for _, c := range result.AddressComponents {
		if c.HasType("sublocality_level_1", "locality") {
			if c.LongName != "" && !strings.Contains(name, c.LongName) {
				name += ", " + c.LongName
			}
			break
		}
	}
	return name
}

func (s *GeocodeServiceImpl) fromNominatim(ctx context.Context, req geocode.ReverseGeocodeRequest) (geocode.Result, error) {
	resp, err := s.nominatim.Reverse(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return geocode.Result{}, err
	}
	if resp.Error != "" || resp.DisplayName == "" {
		return noAddress(req, providerNominatim), nil
	}
	return geocode.Result{
		PlaceName:   resp.DisplayName,
		Coordinates: coordinates(req),
		Provider:    providerNominatim,
	}, nil
}

func (s *GeocodeServiceImpl) cached(ctx context.Context, key string) (geocode.Result, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("Geocode cache read failed", "key", key, "error", err)
		}
		return geocode.Result{}, false
	}

	var res geocode.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		slog.Warn("Discarding malformed geocode cache entry", "key", key, "error", err)
		return geocode.Result{}, false
	}
	return res, true
}

func (s *GeocodeServiceImpl) store(ctx context.Context, key string, res geocode.Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		slog.Warn("Geocode cache write failed", "key", key, "error", err)
	}
}

func cacheKey(req geocode.ReverseGeocodeRequest) string {
	return fmt.Sprintf("geocode:%.5f,%.5f", req.Latitude, req.Longitude)
}

func coordinates(req geocode.ReverseGeocodeRequest) geocode.Coordinates {
	return geocode.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}
}

func noAddress(req geocode.ReverseGeocodeRequest, provider string) geocode.Result {
	return geocode.Result{
		PlaceName:   geocode.UnknownPlaceName(req.Latitude, req.Longitude),
		Coordinates: coordinates(req),
		Message:     noAddressMessage,
		Provider:    provider,
	}
}

func toAddressComponents(components []maps.AddressComponent) []geocode.AddressComponent {
	out := make([]geocode.AddressComponent, 0, len(components))
	for _, c := range components {
		out = append(out, geocode.AddressComponent{
			LongName:  c.LongName,
			ShortName: c.ShortName,
			Types:     c.Types,
		})
	}
	return out
}
