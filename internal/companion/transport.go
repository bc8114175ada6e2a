// Package companion is the data-access layer for the companion analytics
// API: typed query clients for match and gameplay data, the filter-to-wire
// normalizer, client-side timeline reconstruction, and the HTTP transport
// they run on.
package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Transport issues server-relative requests against the companion API. Query
// clients depend on this interface only; retry, rate limiting, and connection
// management live behind it.
type Transport interface {
	// Get issues a GET request and decodes the response payload into out.
	Get(ctx context.Context, path string, out interface{}) error

	// GetRaw issues a GET request and returns the response body verbatim.
	// Used for endpoints whose payload is not necessarily JSON.
	GetRaw(ctx context.Context, path string) ([]byte, error)

	// Post issues a POST request with a JSON body and decodes the response
	// payload into out.
	Post(ctx context.Context, path string, body, out interface{}) error
}

// TransportConfig holds configuration for the HTTP transport.
type TransportConfig struct {
	// BaseURL is the base URL of the companion API (e.g., "http://localhost:9999/api/v1")
	BaseURL string

	// Timeout is the timeout for individual requests
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts
	MaxRetries int

	// RetryBaseDelay is the base delay for exponential backoff
	RetryBaseDelay time.Duration

	// RateLimitDelay is the minimum spacing between requests
	RateLimitDelay time.Duration
}

// DefaultTransportConfig returns a TransportConfig with sensible defaults.
func DefaultTransportConfig(baseURL string) *TransportConfig {
	return &TransportConfig{
		BaseURL:        baseURL,
		Timeout:        10 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: 500 * time.Millisecond,
		RateLimitDelay: 100 * time.Millisecond,
	}
}

// HTTPTransport is the HTTP implementation of Transport.
type HTTPTransport struct {
	config      *TransportConfig
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewHTTPTransport creates a new HTTP transport.
func NewHTTPTransport(config *TransportConfig) *HTTPTransport {
	return &HTTPTransport{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(config.RateLimitDelay), 1),
		logger:      slog.Default(),
	}
}

// envelope matches the service's success wrapper. Endpoints respond with
// {"data": ...}; bodies without the wrapper are decoded directly.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Get issues a GET request and decodes the payload into out.
func (t *HTTPTransport) Get(ctx context.Context, path string, out interface{}) error {
	body, err := t.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodePayload(body, out)
}

// GetRaw issues a GET request and returns the body unmodified.
func (t *HTTPTransport) GetRaw(ctx context.Context, path string) ([]byte, error) {
	return t.doRequest(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body and decodes the payload into out.
func (t *HTTPTransport) Post(ctx context.Context, path string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	respBody, err := t.doRequest(ctx, http.MethodPost, path, encoded)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodePayload(respBody, out)
}

// decodePayload unwraps the data envelope when present and decodes into out.
func decodePayload(body []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		body = env.Data
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request with rate limiting and retry logic.
// Network failures and 5xx responses are retried with exponential backoff;
// other non-success statuses fail immediately.
func (t *HTTPTransport) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := t.config.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= t.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := t.config.RetryBaseDelay * time.Duration(1<<uint(attempt-1))
			t.logger.Debug("retrying request", "method", method, "path", path, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := t.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		//nolint:errcheck // Ignore error on cleanup
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)
			continue
		}

		// Server errors (5xx) are retryable
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
		}

		return respBody, nil
	}

	return nil, lastErr
}
