package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/connectivity"
	"github.com/angas/pricepulse/database"
	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/logging"
	"github.com/angas/pricepulse/publisher"
	"github.com/angas/pricepulse/source"
	"github.com/angas/pricepulse/task"
	"github.com/angas/pricepulse/types"
	"github.com/angas/pricepulse/viewmodel"
	"github.com/angas/pricepulse/www"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		} else {
			slog.Default().Info("application is shutting down...")
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := hours.SetTimezone(cnfg.Gui.GetTimezone()); err != nil {
		panic(fmt.Sprintf("failed to set timezone: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consoleHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	})
	slog.New(consoleHandler).Debug("pricepulse is starting...", slog.String("version", Version))

	db, err := database.New(ctx, cnfg.Database.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	defer db.Close()

	logger := slog.New(logging.NewMultiHandler(
		consoleHandler,
		logging.NewSQLiteHandler(db, cnfg.Logging.GetDbLevel(), cnfg.Logging.GetDbAttrsFormat())))
	slog.SetDefault(logger)

	// Now we can use the logger to log database operations into the database itself
	db.SetLogger(logger.With("module", "database"))

	provider, sourceURL, err := source.New(cnfg.Prices)
	if err != nil {
		panic(fmt.Sprintf("failed to create price source: %v", err))
	}

	initial, err := uiStateFromConfig(cnfg.Ui)
	if err != nil {
		panic(fmt.Sprintf("invalid ui config: %v", err))
	}

	model := viewmodel.New(
		logger.With("module", "viewmodel"),
		provider,
		initial,
		viewmodel.WithFetchTimeout(cnfg.Prices.GetTimeout()))
	model.SetCurrentHour(hours.CurrentHour())

	observer := connectivity.NewObserver(
		logger.With("module", "connectivity"),
		connectivity.HTTPProber{
			URL:    cnfg.Connectivity.GetURL(sourceURL),
			Client: &http.Client{Timeout: 10 * time.Second},
		},
		cnfg.Connectivity.GetInterval(),
		cnfg.Connectivity.GetLostAfter())
	observer.OnChange(refreshWhenOnline(model))

	tasks := task.NewTasks(db, model, cnfg)
	if isDevMode() {
		logger.Info("dev mode, skipping task scheduling")
	} else {
		if err := tasks.Run(); err != nil {
			panic(fmt.Sprintf("failed to schedule tasks: %v", err))
		}
		defer tasks.Stop()
	}

	if cnfg.Mqtt.Enabled {
		pub := publisher.New(cnfg.Mqtt)
		if err := pub.Connect(); err != nil {
			panic(fmt.Sprintf("mqtt connection error: %v", err))
		}
		defer pub.Disconnect()

		states, unsubscribe := model.Subscribe()
		defer unsubscribe()
		go pub.Run(ctx, states)
	}

	server, err := www.StartServer(db, model, observer, cnfg.Api)
	if err != nil {
		panic(fmt.Sprintf("failed to start server: %v", err))
	}
	observer.OnChange(server.ConnectivityChanged)
	go observer.Run(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-ctx.Done():
			logger.Info("main context done")
		case sig := <-sigCh:
			logger.Info("received signal", slog.Any("signal", sig))
			cancel()
		}
	}()

	server.Run(ctx)
	model.Wait()
}

type refresher interface {
	Refresh()
}

// refreshWhenOnline fetches prices the first time the network becomes
// available. Recovering from a lost connection does not trigger a fetch.
func refreshWhenOnline(model refresher) connectivity.OnChange {
	return func(prev, curr connectivity.Status) {
		if prev == connectivity.Unavailable && curr == connectivity.Available {
			model.Refresh()
		}
	}
}

func uiStateFromConfig(cnfg config.AppConfigUi) (viewmodel.UiState, error) {
	state := viewmodel.DefaultUiState()

	if cnfg.Region != nil {
		region, err := types.ParseRegion(*cnfg.Region)
		if err != nil {
			return state, err
		}
		state.CurrentRegion = region
	}
	if cnfg.Appliance != nil {
		appliance, err := types.ParseAppliance(*cnfg.Appliance)
		if err != nil {
			return state, err
		}
		state.Appliance = appliance
	}
	if cnfg.MaxPrice != nil {
		state.MaxPrice = calc.ClampLimit(*cnfg.MaxPrice)
	}
	if cnfg.ShowGraph != nil {
		state.ShowGraph = *cnfg.ShowGraph
	}

	return state, nil
}

func isDevMode() bool {
	return strings.EqualFold(os.Getenv("APP_ENV"), "development")
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("application shutting down with error", slog.Any("error", err))
	}
	if syncer, ok := logger.Handler().(interface{ Sync() error }); ok {
		if syncErr := syncer.Sync(); syncErr != nil {
			logger.Error("failed to flush logger", slog.Any("error", syncErr))
		}
	}

	time.Sleep(2 * time.Second)
	os.Exit(1)
}
