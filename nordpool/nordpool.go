package nordpool

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/hvakosterstrommen"
	"github.com/angas/pricepulse/types"
)

type Nordpool struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Nordpool {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Nordpool{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			// Redirects surface as a StatusError.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (n *Nordpool) URL(region types.Region, day time.Time) string {
	q := url.Values{}
	q.Set("date", hours.Midnight(day).Format("2006-01-02"))
	q.Set("market", "DayAhead")
	q.Set("deliveryArea", region.String())
	q.Set("currency", "NOK")
	return fmt.Sprintf("%s/api/DayAheadPrices?%s", n.baseURL, q.Encode())
}

func (n *Nordpool) GetSpotPrices(ctx context.Context, region types.Region, day time.Time) ([]types.SpotPrice, error) {
	url := n.URL(region, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	// Nord Pool answers 204 when the day has not been published yet
	if resp.StatusCode == http.StatusNoContent {
		return []types.SpotPrice{}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &hvakosterstrommen.StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	var data nordpoolData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	prices := make([]types.SpotPrice, 0, len(data.MultiAreaEntries))
	for _, entry := range data.MultiAreaEntries {
		start := entry.DeliveryStart.Truncate(time.Hour)
		if slices.ContainsFunc(prices, func(p types.SpotPrice) bool { return p.Start.Equal(start) }) {
			continue
		}
		price, ok := entry.EntryPerArea[region.String()]
		if ok {
			prices = append(prices, types.SpotPrice{
				Start: start.In(hours.Location()),
				End:   start.Add(time.Hour).In(hours.Location()),
				Price: normalizePrice(price),
			})
		}
	}

	return prices, nil
}

// NOK/MWh to NOK/kWh with four decimals
func normalizePrice(price float64) float64 {
	precision := math.Pow(10, float64(4))
	return math.Round(price*precision/1e3) / precision
}
