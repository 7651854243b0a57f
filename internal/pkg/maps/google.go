package maps

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultGoogleBaseURL = "https://maps.googleapis.com"

// Google status values the geocoder distinguishes.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// HasType reports whether the component is tagged with any of types.
func (c AddressComponent) HasType(types ...string) bool {
	for _, have := range c.Types {
		for _, want := range types {
			if have == want {
				return true
			}
		}
	}
	return false
}

type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
	PlaceID           string             `json:"place_id"`
}

type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []GeocodeResult `json:"results"`
}

type Place struct {
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	PlaceID  string `json:"place_id"`
}

type PlacesResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Results      []Place `json:"results"`
}

type GoogleClient struct {
	baseURL string
	apiKey  string
	req     *requester
}

// NewGoogleClient builds a Geocoding/Places client. An empty baseURL means
// DefaultGoogleBaseURL.
func NewGoogleClient(baseURL, apiKey string, timeout, retryDelay time.Duration) *GoogleClient {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	return &GoogleClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		req: &requester{
			provider:   "google",
			httpClient: &http.Client{Timeout: timeout},
			baseDelay:  retryDelay,
		},
	}
}

// ReverseGeocode calls the Geocoding API for latlng. A non-OK status is
// returned in the response, not as an error.
func (c *GoogleClient) ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodeResponse, error) {
	q := url.Values{}
	q.Set("latlng", latLng(lat, lon))
	q.Set("key", c.apiKey)

	var resp GeocodeResponse
	err := c.req.getJSON(ctx, c.baseURL+"/maps/api/geocode/json?"+q.Encode(), &resp)
	return resp, err
}

// NearbySearch lists places within radius meters of the point.
func (c *GoogleClient) NearbySearch(ctx context.Context, lat, lon float64, radius int) (PlacesResponse, error) {
	q := url.Values{}
	q.Set("location", latLng(lat, lon))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("key", c.apiKey)

	var resp PlacesResponse
	err := c.req.getJSON(ctx, c.baseURL+"/maps/api/place/nearbysearch/json?"+q.Encode(), &resp)
	return resp, err
}

func latLng(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
