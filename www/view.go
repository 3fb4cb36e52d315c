package www

import (
	"fmt"
	"runtime/debug"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/connectivity"
	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/viewmodel"
)

const waitText = "Please wait..."

type costRow struct {
	Interval string
	Cost     string
}

type dependency struct {
	Path    string
	Version string
}

// pageData is what every full page template is executed with.
type pageData struct {
	Title   string
	Nav     string
	Flashes []string
	liveData

	LimitMin  float64
	LimitMax  float64
	LimitText string
	CostRows  []costRow
	Module    string
	GoVersion string
	Deps      []dependency
}

// liveData is the part of a page that is pushed over the websocket.
type liveData struct {
	State      viewmodel.UiState
	Status     connectivity.Status
	Online     bool
	Notice     string
	RegionName string
	SpotPrice  string
}

func newLiveData(state viewmodel.UiState, status connectivity.Status) liveData {
	return liveData{
		State:      state,
		Status:     status,
		Online:     status == connectivity.Available,
		Notice:     status.Message(),
		RegionName: state.CurrentRegion.DisplayName(),
		SpotPrice:  calc.CurrentPrice(state.ElectricityPrices, state.CurrentHour).Format("%.2f NOK/kWh", waitText),
	}
}

func newPageData(title, nav string, flashes []string, state viewmodel.UiState, status connectivity.Status) pageData {
	p := pageData{
		Title:     title,
		Nav:       nav,
		Flashes:   flashes,
		liveData:  newLiveData(state, status),
		LimitMin:  calc.LimitMin,
		LimitMax:  calc.LimitMax,
		LimitText: limitText(state.MaxPrice),
	}

	if state.Loaded() {
		costs := calc.ApplianceCosts(state.ElectricityPrices, state.Appliance)
		p.CostRows = make([]costRow, len(costs))
		for i, c := range costs {
			p.CostRows[i] = costRow{Interval: hours.IntervalLabel(i), Cost: fmt.Sprintf("%.2f NOK", c)}
		}
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		p.Module = info.Main.Path
		p.GoVersion = info.GoVersion
		for _, d := range info.Deps {
			p.Deps = append(p.Deps, dependency{Path: d.Path, Version: d.Version})
		}
	}

	return p
}

func limitText(limit float64) string {
	if !calc.LimitEnabled(limit) {
		return "Disabled"
	}
	return fmt.Sprintf("%.2f NOK/kWh", limit)
}
