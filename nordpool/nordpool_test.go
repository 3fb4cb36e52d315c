package nordpool

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/hvakosterstrommen"
	"github.com/angas/pricepulse/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"deliveryDateCET": "2024-05-01",
	"currency": "NOK",
	"multiAreaEntries": [
		{"deliveryStart": "2024-04-30T22:00:00Z", "deliveryEnd": "2024-04-30T22:15:00Z", "entryPerArea": {"NO1": 512.34, "NO2": 400}},
		{"deliveryStart": "2024-04-30T22:15:00Z", "deliveryEnd": "2024-04-30T22:30:00Z", "entryPerArea": {"NO1": 999.99, "NO2": 401}},
		{"deliveryStart": "2024-04-30T23:00:00Z", "deliveryEnd": "2024-05-01T00:00:00Z", "entryPerArea": {"NO1": 1000.05, "NO2": 402}}
	]
}`

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, 0.5123, normalizePrice(512.34))
	assert.Equal(t, 1.0001, normalizePrice(1000.05))
}

func TestGetSpotPrices(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	day := time.Date(2024, 5, 1, 10, 0, 0, 0, hours.Location())
	prices, err := New(srv.URL, time.Second).GetSpotPrices(context.Background(), types.RegionNO1, day)
	require.NoError(t, err)

	assert.Contains(t, query, "deliveryArea=NO1")
	assert.Contains(t, query, "date=2024-05-01")
	require.Len(t, prices, 2)
	assert.Equal(t, 0.5123, prices[0].Price)
	assert.Equal(t, 0, prices[0].Start.Hour())
	assert.Equal(t, 1.0001, prices[1].Price)
}

func TestGetSpotPricesNotPublished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	prices, err := New(srv.URL, time.Second).GetSpotPrices(context.Background(), types.RegionNO4, time.Now())
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestGetSpotPricesAcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	day := time.Date(2024, 5, 1, 10, 0, 0, 0, hours.Location())
	prices, err := New(srv.URL, time.Second).GetSpotPrices(context.Background(), types.RegionNO1, day)
	require.NoError(t, err)
	assert.Len(t, prices, 2)
}

func TestGetSpotPricesStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		class  hvakosterstrommen.StatusClass
	}{
		{"redirect", http.StatusFound, hvakosterstrommen.StatusClassRedirect},
		{"not found", http.StatusNotFound, hvakosterstrommen.StatusClassClient},
		{"server error", http.StatusBadGateway, hvakosterstrommen.StatusClassServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "/elsewhere")
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			day := time.Date(2024, 5, 1, 10, 0, 0, 0, hours.Location())
			c := New(srv.URL, time.Second)
			prices, err := c.GetSpotPrices(context.Background(), types.RegionNO3, day)
			assert.Nil(t, prices)

			var statusErr *hvakosterstrommen.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.class, statusErr.Class())
			assert.Equal(t, c.URL(types.RegionNO3, day), statusErr.URL)
		})
	}
}
