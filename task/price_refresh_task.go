package task

import (
	"log/slog"
)

// NewPriceRefreshTask fetches the prices of the new day. The fetch itself
// runs in the view-model and logs its own failures.
func NewPriceRefreshTask(logger *slog.Logger, model PriceModel) func() {
	return func() {
		logger.Debug("running price refresh task...")
		model.Refresh()
	}
}

func NewCurrentHourTask(logger *slog.Logger, model PriceModel, currentHour func() int) func() {
	return func() {
		hour := currentHour()
		logger.Debug("running current hour task...", slog.Int("hour", hour))
		model.SetCurrentHour(hour)
	}
}
