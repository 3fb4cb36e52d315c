package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/hours"
	"github.com/robfig/cron/v3"
)

// PriceModel is the part of the view-model driven by the schedule.
type PriceModel interface {
	Refresh()
	SetCurrentHour(hour int)
}

type Tasks struct {
	cron             *cron.Cron
	cnfg             *config.AppConfig
	PriceRefreshTask func()
	CurrentHourTask  func()
	MaintenanceTask  func()
}

func NewTasks(db MaintenanceDatabase, model PriceModel, cnfg *config.AppConfig) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron:             cron.New(cron.WithLocation(hours.Location())),
		cnfg:             cnfg,
		PriceRefreshTask: NewPriceRefreshTask(logger.With(slog.String("task", "price_refresh")), model),
		CurrentHourTask:  NewCurrentHourTask(logger.With(slog.String("task", "current_hour")), model, hours.CurrentHour),
		MaintenanceTask:  NewMaintenanceTask(logger.With(slog.String("task", "maintenance")), db, cnfg),
	}
}

func (t *Tasks) Run() error {
	if _, err := t.cron.AddFunc(t.cnfg.Prices.GetRunAt(), t.PriceRefreshTask); err != nil {
		return fmt.Errorf("scheduling price refresh task: %w", err)
	}
	if _, err := t.cron.AddFunc("@hourly", t.CurrentHourTask); err != nil {
		return fmt.Errorf("scheduling current hour task: %w", err)
	}
	if _, err := t.cron.AddFunc("30 2 * * *", t.MaintenanceTask); err != nil {
		return fmt.Errorf("scheduling maintenance task: %w", err)
	}
	t.cron.Start()
	return nil
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
