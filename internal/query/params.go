package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/stockprice/internal/domain/models"
)

// Query-string keys understood by ParseParams.
const (
	KeyIdentifier  = "identifier"
	KeySymbol      = "symbol"
	KeyCompanyName = "company_name"
	KeyIndustry    = "industry"
	KeyISIN        = "isin"
	KeySort        = "sort"
	KeyPage        = "page"
	KeyLimit       = "limit"
)

// ParseParams builds models.Params from raw string values, typically a URL query.
//
// Parameters:
//   - get: lookup returning the raw value for a key, "" when absent
//     (e.g. url.Values.Get or gin.Context.Query).
//
// Behavior:
//   - Filter and sort values are trimmed; empty values are absent.
//   - page and limit are coerced to integers; absent values keep their defaults.
//   - Non-integer page or limit fails with ErrInvalidPagination.
func ParseParams(get func(key string) string) (models.Params, error) {
	p := models.Params{
		Identifier:  strings.TrimSpace(get(KeyIdentifier)),
		Symbol:      strings.TrimSpace(get(KeySymbol)),
		CompanyName: strings.TrimSpace(get(KeyCompanyName)),
		Industry:    strings.TrimSpace(get(KeyIndustry)),
		ISIN:        strings.TrimSpace(get(KeyISIN)),
		Sort:        strings.TrimSpace(get(KeySort)),
	}

	var err error
	if p.Page, err = parseOptionalInt(KeyPage, get(KeyPage)); err != nil {
		return models.Params{}, err
	}
	if p.Limit, err = parseOptionalInt(KeyLimit, get(KeyLimit)); err != nil {
		return models.Params{}, err
	}
	return p, nil
}

// parseOptionalInt accepts an optionally signed base-10 integer only;
// leading zeros stay decimal and digit separators are rejected.
func parseOptionalInt(key, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidPagination, key, raw)
	}
	return &v, nil
}
