package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/logger"
	"github.com/guttosm/stockprice/internal/query"
)

var (
	// ErrBadRequest is returned by Price when the filters do not select exactly one record.
	ErrBadRequest = errors.New("bad request")
	// ErrNoMatch is the ErrBadRequest case where no record matches.
	ErrNoMatch = fmt.Errorf("%w: no record matches the filters", ErrBadRequest)
	// ErrMultipleMatches is the ErrBadRequest case where several records match.
	ErrMultipleMatches = fmt.Errorf("%w: more than one record matches the filters", ErrBadRequest)
)

// Fetcher retrieves the raw price listing. Implemented by *rapidapi.Client.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]models.Record, error)
}

// PriceService runs the query pipeline over a freshly fetched listing.
// Every call performs exactly one fetch; nothing is kept between calls.
type PriceService interface {
	Price(ctx context.Context, p models.Params) (models.Record, error)
	Prices(ctx context.Context, p models.Params) ([]models.Record, error)
	PriceAll(ctx context.Context, p models.Params) ([]models.Record, error)
}

type priceService struct {
	fetcher Fetcher
}

func NewPriceService(fetcher Fetcher) PriceService {
	return &priceService{fetcher: fetcher}
}

// Price returns the single record selected by the filters in p.
// Sort and pagination parameters are ignored.
func (s *priceService) Price(ctx context.Context, p models.Params) (models.Record, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := query.Filter(records, p)
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return nil, ErrNoMatch
	default:
		logger.L().Debug().Int("matches", len(matched)).Msg("price filters are ambiguous")
		return nil, fmt.Errorf("%w (%d)", ErrMultipleMatches, len(matched))
	}
}

// Prices filters, optionally sorts, and always paginates the listing.
// The result is never nil.
func (s *priceService) Prices(ctx context.Context, p models.Params) ([]models.Record, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	out := query.Filter(records, p)
	if p.Sort != "" {
		if out, err = query.Sort(out, p.Sort); err != nil {
			return nil, err
		}
	}
	page := query.Paginate(out, p.PageOrDefault(), p.LimitOrDefault())

	logger.L().Debug().
		Int("fetched", len(records)).
		Int("matched", len(out)).
		Int("returned", len(page)).
		Msg("prices query")

	return page, nil
}

// PriceAll returns the whole listing, sorted when p.Sort is set.
// Filters and pagination in p are not applied.
func (s *priceService) PriceAll(ctx context.Context, p models.Params) ([]models.Record, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if p.Sort == "" {
		if records == nil {
			return []models.Record{}, nil
		}
		return records, nil
	}
	return query.Sort(records, p.Sort)
}
