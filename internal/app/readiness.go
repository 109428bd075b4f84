package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/rapidapi"
	"github.com/guttosm/stockprice/internal/service"
)

// credentialProbe wraps the upstream fetcher and remembers whether the
// latest answer from RapidAPI rejected the configured key (401 / 403).
// Readiness reads that state.
type credentialProbe struct {
	fetcher  service.Fetcher
	rejected atomic.Pointer[rapidapi.FetchError]
}

func newCredentialProbe(fetcher service.Fetcher) *credentialProbe {
	return &credentialProbe{fetcher: fetcher}
}

// FetchAll delegates to the wrapped fetcher and records the outcome.
// Failures without an upstream answer (network, timeout) leave the state as is.
func (p *credentialProbe) FetchAll(ctx context.Context) ([]models.Record, error) {
	records, err := p.fetcher.FetchAll(ctx)

	var fetchErr *rapidapi.FetchError
	switch {
	case err == nil:
		p.rejected.Store(nil)
	case errors.As(err, &fetchErr) && isAuthStatus(fetchErr.StatusCode):
		p.rejected.Store(fetchErr)
	case errors.As(err, &fetchErr) && fetchErr.StatusCode != 0:
		p.rejected.Store(nil)
	}
	return records, err
}

// Ready fails while the upstream rejects the key.
func (p *credentialProbe) Ready() error {
	if fe := p.rejected.Load(); fe != nil {
		return fmt.Errorf("rapidapi rejected the configured key: %w", fe)
	}
	return nil
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
