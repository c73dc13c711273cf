// Package omdb fetches cross-source rating data from the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://www.omdbapi.com"
	defaultTimeout = 10 * time.Second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new OMDb API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the OMDb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// Fetch retrieves a movie record from the OMDb API by IMDb ID. There is one
// endpoint and one call per title; an API-level failure (Response "False")
// is reported as an error just like a transport failure, so the caller's
// fallback path covers both.
func (c *Client) Fetch(ctx context.Context, imdbID string) (*OMDBResponse, error) {
	slog.Debug("Fetching OMDb data", "imdb_id", imdbID)

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)

	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("omdb: unexpected status %d for ID %s: %s",
			resp.StatusCode, imdbID, strings.TrimSpace(string(body)))
	}

	var record OMDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if record.Response == "False" {
		return nil, fmt.Errorf("omdb: API error for ID %s: %s", imdbID, record.Error)
	}

	// A "True" response with no identity fields is malformed; treat it the
	// same as a transport failure.
	if record.ImdbID == "" || record.Title == "" {
		return nil, fmt.Errorf("omdb: invalid or empty response for ID %s", imdbID)
	}

	return &record, nil
}
