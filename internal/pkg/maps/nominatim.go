package maps

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

type NominatimResult struct {
	DisplayName string            `json:"display_name"`
	Name        string            `json:"name"`
	Address     map[string]string `json:"address"`
	Error       string            `json:"error"`
}

type NominatimClient struct {
	baseURL string
	req     *requester
}

// NewNominatimClient builds an OpenStreetMap reverse geocoder. Nominatim's
// usage policy requires an identifying User-Agent.
func NewNominatimClient(baseURL, userAgent string, timeout, retryDelay time.Duration) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)

	return &NominatimClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		req: &requester{
			provider:   "nominatim",
			httpClient: &http.Client{Timeout: timeout},
			baseDelay:  retryDelay,
			headers:    headers,
		},
	}
}

func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (NominatimResult, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var resp NominatimResult
	err := c.req.getJSON(ctx, c.baseURL+"/reverse?"+q.Encode(), &resp)
	return resp, err
}
