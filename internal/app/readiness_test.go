package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/rapidapi"
)

type scriptedFetcher struct {
	errs  []error
	calls int
}

func (f *scriptedFetcher) FetchAll(_ context.Context) ([]models.Record, error) {
	err := f.errs[f.calls]
	f.calls++
	if err != nil {
		return nil, err
	}
	return []models.Record{}, nil
}

func TestCredentialProbe(t *testing.T) {
	forbidden := &rapidapi.FetchError{StatusCode: http.StatusForbidden, Message: "Forbidden"}
	unauthorized := &rapidapi.FetchError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	serverErr := &rapidapi.FetchError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error"}
	netErr := &rapidapi.FetchError{Message: "execute request", Err: errors.New("dial tcp: refused")}

	cases := []struct {
		name      string
		errs      []error
		wantReady bool
	}{
		{name: "no fetch yet", errs: nil, wantReady: true},
		{name: "success", errs: []error{nil}, wantReady: true},
		{name: "forbidden", errs: []error{forbidden}, wantReady: false},
		{name: "unauthorized", errs: []error{unauthorized}, wantReady: false},
		{name: "recovers after success", errs: []error{forbidden, nil}, wantReady: true},
		{name: "other status clears rejection", errs: []error{forbidden, serverErr}, wantReady: true},
		{name: "network error keeps rejection", errs: []error{forbidden, netErr}, wantReady: false},
		{name: "server error alone stays ready", errs: []error{serverErr}, wantReady: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			probe := newCredentialProbe(&scriptedFetcher{errs: tc.errs})
			for range tc.errs {
				_, _ = probe.FetchAll(context.Background())
			}

			err := probe.Ready()
			if tc.wantReady && err != nil {
				t.Fatalf("expected ready, got %v", err)
			}
			if !tc.wantReady {
				if err == nil {
					t.Fatalf("expected not ready")
				}
				var fe *rapidapi.FetchError
				if !errors.As(err, &fe) || !isAuthStatus(fe.StatusCode) {
					t.Fatalf("expected wrapped auth FetchError, got %v", err)
				}
			}
		})
	}
}

func TestCredentialProbe_PassesThrough(t *testing.T) {
	probe := newCredentialProbe(&scriptedFetcher{errs: []error{nil}})
	records, err := probe.FetchAll(context.Background())
	if err != nil || records == nil {
		t.Fatalf("unexpected: records=%v err=%v", records, err)
	}
}
