package hvakosterstrommen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/types"
)

const DefaultBaseURL = "https://www.hvakosterstrommen.no/api/v1/prices"

type rawPrice struct {
	NOKPerKWh float64   `json:"NOK_per_kWh"`
	EURPerKWh float64   `json:"EUR_per_kWh"`
	EXR       float64   `json:"EXR"`
	TimeStart time.Time `json:"time_start"`
	TimeEnd   time.Time `json:"time_end"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			// A redirect is reported as a failure of its own, not followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// URL returns the price document URL for the local calendar day of `day`.
func (c *Client) URL(region types.Region, day time.Time) string {
	return fmt.Sprintf("%s/%s_%s.json", c.baseURL, hours.PathDate(day), region)
}

func (c *Client) GetSpotPrices(ctx context.Context, region types.Region, day time.Time) ([]types.SpotPrice, error) {
	url := c.URL(region, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	var rawPrices []rawPrice
	if err := json.NewDecoder(resp.Body).Decode(&rawPrices); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	prices := make([]types.SpotPrice, 0, len(rawPrices))
	for _, raw := range rawPrices {
		prices = append(prices, types.SpotPrice{
			Start: raw.TimeStart,
			End:   raw.TimeEnd,
			Price: raw.NOKPerKWh,
		})
	}

	return prices, nil
}
