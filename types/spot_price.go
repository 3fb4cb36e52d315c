package types

import (
	"context"
	"time"
)

type SpotPrice struct {
	Start time.Time
	End   time.Time
	Price float64 // Price in NOK per kWh
}

type SpotPriceProvider interface {
	// GetSpotPrices returns the hourly prices for the calendar day of `day` in `region`.
	GetSpotPrices(ctx context.Context, region Region, day time.Time) ([]SpotPrice, error)
}
