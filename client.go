// Package stockprice fetches stock price listings from the RapidAPI
// latest-stock-price API and queries them client-side.
//
// Each call performs a single GET <base>/any and then runs an in-memory
// pipeline over the response: filter, sort, paginate.
//
//	c := stockprice.New(apiKey, stockprice.Params{Industry: "COMPUTERS - SOFTWARE", Sort: "lastPrice.desc"})
//	page, err := c.Prices(ctx)
package stockprice

import (
	"context"
	"net/http"
	"time"

	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/query"
	"github.com/guttosm/stockprice/internal/rapidapi"
	"github.com/guttosm/stockprice/internal/service"
)

type (
	// Record is one stock listing; company metadata is under the "meta" key.
	Record = models.Record
	// Params selects, orders and pages records. See models.Params.
	Params = models.Params
	// FetchError reports a failed listing request.
	FetchError = rapidapi.FetchError
)

var (
	// ErrBadRequest is returned by Price unless exactly one record matches.
	ErrBadRequest = service.ErrBadRequest
	// ErrNoMatch is the ErrBadRequest case with zero matches.
	ErrNoMatch = service.ErrNoMatch
	// ErrMultipleMatches is the ErrBadRequest case with several matches.
	ErrMultipleMatches = service.ErrMultipleMatches
	// ErrMalformedSortSpec is returned for a sort value that is not "<field>.<direction>".
	ErrMalformedSortSpec = query.ErrMalformedSortSpec
	// ErrInvalidSortValue is returned when a datetime sort key cannot be parsed.
	ErrInvalidSortValue = query.ErrInvalidSortValue
	// ErrInvalidPagination is returned by ParseParams for non-integer page or limit.
	ErrInvalidPagination = query.ErrInvalidPagination
)

// Option customizes the transport of a Client.
type Option = rapidapi.Option

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option { return rapidapi.WithBaseURL(u) }

// WithHost overrides the X-RapidAPI-Host header.
func WithHost(h string) Option { return rapidapi.WithHost(h) }

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option { return rapidapi.WithHTTPClient(hc) }

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option { return rapidapi.WithTimeout(d) }

// Int returns a pointer to v, for Params.Page and Params.Limit.
func Int(v int) *int { return models.Int(v) }

// ParseParams builds Params from URL-style string values
// (identifier, symbol, company_name, industry, isin, sort, page, limit).
func ParseParams(get func(key string) string) (Params, error) {
	return query.ParseParams(get)
}

// Client binds an API key and a query. It is stateless between calls and
// safe for concurrent use.
type Client struct {
	params Params
	svc    service.PriceService
}

// New creates a Client for apiKey that runs params on every call.
func New(apiKey string, params Params, opts ...Option) *Client {
	return &Client{
		params: params,
		svc:    service.NewPriceService(rapidapi.NewClient(apiKey, opts...)),
	}
}

// Params returns the query bound to c.
func (c *Client) Params() Params {
	return c.params
}

// Price returns the only record matching the filters.
// It fails with ErrNoMatch or ErrMultipleMatches (both ErrBadRequest) otherwise.
func (c *Client) Price(ctx context.Context) (Record, error) {
	return c.svc.Price(ctx, c.params)
}

// Prices returns one page of the filtered, optionally sorted listing.
// The result is empty, never nil, when nothing matches.
func (c *Client) Prices(ctx context.Context) ([]Record, error) {
	return c.svc.Prices(ctx, c.params)
}

// PriceAll returns the full listing, sorted when Params.Sort is set.
// Filters and pagination are not applied.
func (c *Client) PriceAll(ctx context.Context) ([]Record, error) {
	return c.svc.PriceAll(ctx, c.params)
}
