package calc

import (
	"math"
	"testing"

	"github.com/angas/pricepulse/types"
	"github.com/stretchr/testify/assert"
)

func TestApplianceCosts(t *testing.T) {
	prices := []float64{1.0, 2.0}

	assert.InDeltaSlice(t, []float64{0.57, 1.14}, ApplianceCosts(prices, types.ApplianceWashing), 1e-9)
	assert.InDeltaSlice(t, []float64{6, 12}, ApplianceCosts(prices, types.ApplianceShower), 1e-9)
	assert.Equal(t, prices, ApplianceCosts(prices, types.Appliance("Unknown")))
	assert.Empty(t, ApplianceCosts(nil, types.ApplianceOven))
}

func TestChartMaxY(t *testing.T) {
	assert.Equal(t, 0.0, ChartMaxY(nil))
	assert.Equal(t, 2.0, ChartMaxY([]float64{0.5, 1.2}))
	assert.Equal(t, 3.0, ChartMaxY([]float64{1.8}))
}

func TestThresholdVisible(t *testing.T) {
	assert.True(t, ThresholdVisible(1.28, 2))
	assert.False(t, ThresholdVisible(0, 2))
	assert.False(t, ThresholdVisible(2, 2))
	assert.False(t, ThresholdVisible(3, 2))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 0.0, ClampLimit(-1))
	assert.Equal(t, 5.0, ClampLimit(7.5))
	assert.Equal(t, 1.28, ClampLimit(1.28))
	assert.Equal(t, 0.0, ClampLimit(math.NaN()))
}

func TestCurrentPrice(t *testing.T) {
	prices := []float64{0.1, 0.2, 0.3}
	assert.Equal(t, 0.3, CurrentPrice(prices, 2).Value())
	assert.False(t, CurrentPrice(prices, 3).IsValid())
	assert.False(t, CurrentPrice(nil, 0).IsValid())
}

func TestHoursAboveLimit(t *testing.T) {
	prices := []float64{0.5, 1.5, 1.0, 2.0}
	assert.Equal(t, []int{1, 3}, HoursAboveLimit(prices, 1.0))
	assert.Nil(t, HoursAboveLimit(prices, 0))
}
