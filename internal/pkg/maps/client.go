package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const maxRetries = 3

// APIError is a non-2xx answer from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error [%d]: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *APIError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// requester performs JSON GETs with retries. Transport errors, 429 and 5xx
// are retried with exponential backoff (base, 2*base, ...).
type requester struct {
	provider   string
	httpClient *http.Client
	baseDelay  time.Duration
	headers    http.Header
}

func (r *requester) getJSON(ctx context.Context, url string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := r.do(ctx, url, out)
		if err == nil {
			return nil
		}

		lastErr = err
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.retryable() {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Warn("Map provider request failed",
			"provider", r.provider,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			select {
			case <-time.After(r.baseDelay * time.Duration(1<<(attempt-1))):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("%s request failed after %d attempts: %w", r.provider, maxRetries, lastErr)
}

func (r *requester) do(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	for key, values := range r.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Provider: r.provider, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", r.provider, err)
	}
	return nil
}
