package www

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/types"
)

func postOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func NewRegionHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !postOnly(w, r) {
			return
		}

		region, err := types.ParseRegion(r.FormValue("region"))
		if err != nil {
			logger.Warn("invalid region", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.model.ChangeRegion(region)
		s.flash.Add(w, r, "Region set to %s", region.DisplayName())
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
	}
}

func NewLimitHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !postOnly(w, r) {
			return
		}

		limit, err := strconv.ParseFloat(r.FormValue("limit"), 64)
		if err != nil {
			logger.Warn("invalid price limit", slog.Any("error", err))
			http.Error(w, "invalid price limit", http.StatusBadRequest)
			return
		}

		s.model.ChangeLimit(limit)
		if limit = calc.ClampLimit(limit); calc.LimitEnabled(limit) {
			s.flash.Add(w, r, "Price limit set to %.2f NOK/kWh", limit)
		} else {
			s.flash.Add(w, r, "Price limit disabled")
		}
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
	}
}

func NewApplianceHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !postOnly(w, r) {
			return
		}

		appliance, err := types.ParseAppliance(r.FormValue("appliance"))
		if err != nil {
			logger.Warn("invalid appliance", slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.model.ChangeAppliance(appliance)
		http.Redirect(w, r, "/appliances", http.StatusSeeOther)
	}
}

func NewViewHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !postOnly(w, r) {
			return
		}

		switch view := r.FormValue("view"); view {
		case "graph":
			s.model.SetGraphVisible(true)
		case "table":
			s.model.SetGraphVisible(false)
		default:
			logger.Warn("invalid view", slog.String("view", view))
			http.Error(w, "view must be graph or table", http.StatusBadRequest)
			return
		}

		http.Redirect(w, r, "/appliances", http.StatusSeeOther)
	}
}

func NewRefreshHandler(logger *slog.Logger, s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !postOnly(w, r) {
			return
		}

		logger.Debug("refresh requested")
		s.model.Refresh()
		s.flash.Add(w, r, "Refreshing spot prices...")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
