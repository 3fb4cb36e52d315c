package calc

import (
	"math"
	"slices"

	"github.com/angas/pricepulse/slice"
	"github.com/angas/pricepulse/types"
	"github.com/angas/pricepulse/types/maybe"
)

const (
	LimitMin = 0.0
	LimitMax = 5.0
)

func ApplianceCosts(prices []float64, appliance types.Appliance) []float64 {
	m := appliance.Multiplier()
	return slice.Map(prices, func(p float64) float64 { return p * m })
}

// ChartMaxY is the upper bound of the price axis.
func ChartMaxY(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	return math.Ceil(slices.Max(prices) + 0.25)
}

func ThresholdVisible(limit, maxY float64) bool {
	return LimitEnabled(limit) && limit < maxY
}

// A limit of zero means the price limit is disabled.
func LimitEnabled(limit float64) bool {
	return limit > 0
}

func ClampLimit(limit float64) float64 {
	if math.IsNaN(limit) {
		return LimitMin
	}
	return math.Min(LimitMax, math.Max(LimitMin, limit))
}

func CurrentPrice(prices []float64, hour int) maybe.Maybe[float64] {
	return maybe.At(prices, hour)
}

// HoursAboveLimit returns the indexes of the hours priced above limit.
func HoursAboveLimit(prices []float64, limit float64) []int {
	if !LimitEnabled(limit) {
		return nil
	}
	var above []int
	for i, p := range prices {
		if p > limit {
			above = append(above, i)
		}
	}
	return above
}
