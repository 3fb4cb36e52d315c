package hvakosterstrommen

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePrices = `[
	{"NOK_per_kWh": 1.2345, "EUR_per_kWh": 0.1055, "EXR": 11.7, "time_start": "2024-05-01T00:00:00+02:00", "time_end": "2024-05-01T01:00:00+02:00", "extra": true},
	{"NOK_per_kWh": 0.9876, "EUR_per_kWh": 0.0844, "EXR": 11.7, "time_start": "2024-05-01T01:00:00+02:00", "time_end": "2024-05-01T02:00:00+02:00"}
]`

func day() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, hours.Location())
}

func TestURL(t *testing.T) {
	c := New("https://example.com/api/v1/prices/", time.Second)
	assert.Equal(t, "https://example.com/api/v1/prices/2024/05-01_NO5.json", c.URL(types.RegionNO5, day()))
}

func TestGetSpotPrices(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePrices))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/v1/prices", time.Second)
	prices, err := c.GetSpotPrices(context.Background(), types.RegionNO1, day())
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/prices/2024/05-01_NO1.json", gotPath)
	require.Len(t, prices, 2)
	assert.Equal(t, 1.2345, prices[0].Price)
	assert.Equal(t, 0.9876, prices[1].Price)
	assert.True(t, prices[0].End.Equal(prices[1].Start))
}

func TestGetSpotPricesStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		class  StatusClass
	}{
		{"redirect", http.StatusFound, StatusClassRedirect},
		{"not found", http.StatusNotFound, StatusClassClient},
		{"server error", http.StatusBadGateway, StatusClassServer},
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

			c := New(srv.URL, time.Second)
			prices, err := c.GetSpotPrices(context.Background(), types.RegionNO2, day())
			assert.Nil(t, prices)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.class, statusErr.Class())
			assert.Equal(t, c.URL(types.RegionNO2, day()), statusErr.URL)
		})
	}
}

func TestGetSpotPricesDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).GetSpotPrices(context.Background(), types.RegionNO3, day())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
