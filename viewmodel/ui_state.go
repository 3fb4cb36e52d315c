package viewmodel

import (
	"github.com/angas/pricepulse/types"
)

// UiState is an immutable snapshot of what the screens display.
// ElectricityPrices is nil until the first fetch has completed, and empty
// when that fetch failed. Slices in a published snapshot are never mutated.
type UiState struct {
	ElectricityPrices []float64       `json:"electricityPrices"`
	CurrentRegion     types.Region    `json:"currentRegion"`
	CurrentHour       int             `json:"currentHour"`
	MaxPrice          float64         `json:"maxPrice"`
	ShowGraph         bool            `json:"showGraph"`
	Appliance         types.Appliance `json:"appliance"`
}

func DefaultUiState() UiState {
	return UiState{
		ElectricityPrices: nil,
		CurrentRegion:     types.RegionNO1,
		CurrentHour:       0,
		MaxPrice:          1.28,
		ShowGraph:         true,
		Appliance:         types.ApplianceWashing,
	}
}

func (s UiState) Loaded() bool {
	return s.ElectricityPrices != nil
}
