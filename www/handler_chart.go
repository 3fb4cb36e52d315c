package www

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/viewmodel"
	"github.com/angas/pricepulse/www/chartjs"
)

const (
	priceAxisTitle = "NOK/kWh"
	costAxisTitle  = "NOK"
	hourAxisTitle  = "Hour of day"
	// Fixed reference line drawn on the appliance cost chart.
	applianceReference = 2.7
)

func NewChartHandler(logger *slog.Logger, model PriceModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		state := model.State()

		var chart chartjs.Chart
		switch view := r.URL.Query().Get("view"); view {
		case "", "home":
			chart = priceChart(state)
		case "appliances":
			chart = applianceChart(state)
		default:
			http.Error(w, "unknown chart view", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(chart); err != nil {
			logger.Error("handling chart request", slog.Any("error", err))
			http.Error(w, "unable to encode data points", http.StatusInternalServerError)
			return
		}
	}
}

func priceChart(state viewmodel.UiState) chartjs.Chart {
	if !state.Loaded() {
		return chartjs.NewEmptyChart(priceAxisTitle, hourAxisTitle)
	}
	return withLimit(chartjs.NewChart("", priceAxisTitle, hourAxisTitle, state.ElectricityPrices), state.ElectricityPrices, "limit", state.MaxPrice)
}

func applianceChart(state viewmodel.UiState) chartjs.Chart {
	if !state.Loaded() {
		return chartjs.NewEmptyChart(costAxisTitle, hourAxisTitle)
	}
	costs := calc.ApplianceCosts(state.ElectricityPrices, state.Appliance)
	return withLimit(chartjs.NewChart("", costAxisTitle, hourAxisTitle, costs), costs, "reference", applianceReference)
}

func withLimit(chart chartjs.Chart, values []float64, label string, limit float64) chartjs.Chart {
	maxY := calc.ChartMaxY(values)
	if maxY == 0 {
		return chart
	}
	chart = chart.WithYScale(0, maxY)
	if calc.ThresholdVisible(limit, maxY) {
		chart = chart.WithThreshold(label, limit)
	}
	return chart
}
