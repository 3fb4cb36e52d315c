package www

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/viewmodel"
)

type stateResponse struct {
	viewmodel.UiState
	RegionName   string   `json:"regionName"`
	CurrentPrice *float64 `json:"currentPrice"`
	LimitEnabled bool     `json:"limitEnabled"`
	Connectivity string   `json:"connectivity"`
}

func NewStateHandler(logger *slog.Logger, model PriceModel, conn ConnectivityStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		state := model.State()
		resp := stateResponse{
			UiState:      state,
			RegionName:   state.CurrentRegion.DisplayName(),
			LimitEnabled: calc.LimitEnabled(state.MaxPrice),
			Connectivity: conn.Status().String(),
		}
		if p := calc.CurrentPrice(state.ElectricityPrices, state.CurrentHour); p.IsValid() {
			v := p.Value()
			resp.CurrentPrice = &v
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("handling state request", slog.Any("error", err))
			http.Error(w, "unable to encode state", http.StatusInternalServerError)
		}
	}
}
