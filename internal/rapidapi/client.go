package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/logger"
)

const (
	// DefaultBaseURL is the RapidAPI endpoint of the latest-stock-price API.
	DefaultBaseURL = "https://latest-stock-price.p.rapidapi.com"
	// DefaultHost is sent as X-RapidAPI-Host.
	DefaultHost = "latest-stock-price.p.rapidapi.com"
	// DefaultTimeout bounds a single listing request.
	DefaultTimeout = 15 * time.Second

	listingPath = "/any"

	headerKey  = "X-RapidAPI-Key"
	headerHost = "X-RapidAPI-Host"
)

// Client fetches the full price listing from RapidAPI.
//
// A Client holds no state between calls and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	host       string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL (useful for tests and proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHost overrides the X-RapidAPI-Host header value.
func WithHost(h string) Option {
	return func(c *Client) { c.host = h }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// NewClient creates a Client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		host:       DefaultHost,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// FetchAll performs GET <base>/any and decodes the listing.
//
// Behavior:
//   - Sends X-RapidAPI-Key and X-RapidAPI-Host headers.
//   - A non-2xx response fails with *FetchError carrying the status message.
//   - Network and decoding failures are also reported as *FetchError.
//   - No retries are attempted.
//
// Returns:
//   - []models.Record: the listing in API order (never nil on success).
//   - error: *FetchError on failure.
func (c *Client) FetchAll(ctx context.Context) ([]models.Record, error) {
	url := c.baseURL + listingPath
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Message: "create request", Err: err}
	}
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set(headerHost, c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: "execute request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.L().Warn().
			Str("url", url).
			Int("status", resp.StatusCode).
			Dur("elapsed", time.Since(start)).
			Msg("price listing request rejected")
		return nil, newStatusError(resp, body)
	}

	records := []models.Record{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}
	if records == nil {
		records = []models.Record{}
	}

	logger.L().Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("price listing fetched")

	return records, nil
}

// newStatusError builds the error for a non-2xx response. The message is
// the HTTP reason phrase; the API's own JSON "message", when present, is
// kept as detail.
func newStatusError(resp *http.Response, body []byte) *FetchError {
	msg := http.StatusText(resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode))); reason != "" {
		msg = reason
	}

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	return &FetchError{StatusCode: resp.StatusCode, Message: msg, Detail: payload.Message}
}
