package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/hours"
	"github.com/angas/pricepulse/slice"
	"github.com/angas/pricepulse/source"
	"github.com/angas/pricepulse/types"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type options struct {
	region    string
	appliance string
	date      string
	source    string
	baseURL   string
	timezone  string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "spot_prices",
		Short: "Print a day's hourly spot prices for a Norwegian price region",
		Long: `Fetch the day-ahead spot prices for one price region and print them
as an hourly table in NOK, optionally multiplied for an appliance.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.region, "region", "r", string(types.RegionNO1), "price region, NO1..NO5")
	cmd.Flags().StringVarP(&opts.appliance, "appliance", "a", "", "Washing, Oven, Heater or Shower, raw prices if empty")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "day to fetch as YYYY-MM-DD, today if empty")
	cmd.Flags().StringVar(&opts.source, "source", source.Hvakosterstrommen, "price source, hvakosterstrommen or nordpool")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "override the source's API URL")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "Europe/Oslo", "time zone that defines the day")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(ctx context.Context, w io.Writer, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339Nano,
	})))

	if err := hours.SetTimezone(opts.timezone); err != nil {
		return err
	}

	region, err := types.ParseRegion(opts.region)
	if err != nil {
		return err
	}

	var appliance types.Appliance
	if opts.appliance != "" {
		if appliance, err = types.ParseAppliance(opts.appliance); err != nil {
			return err
		}
	}

	day := hours.Now()
	if opts.date != "" {
		if day, err = time.ParseInLocation(time.DateOnly, opts.date, hours.Location()); err != nil {
			return fmt.Errorf("invalid date %q: %w", opts.date, err)
		}
	}

	cnfg := config.AppConfigPrices{Source: opts.source}
	if opts.baseURL != "" {
		cnfg.BaseURL = &opts.baseURL
	}
	provider, _, err := source.New(cnfg)
	if err != nil {
		return err
	}

	slog.Debug("fetching spot prices", slog.String("region", region.String()), slog.String("day", day.Format(time.DateOnly)))
	prices, err := provider.GetSpotPrices(ctx, region, day)
	if err != nil {
		return fmt.Errorf("fetching spot prices: %w", err)
	}

	values := slice.Map(prices, func(p types.SpotPrice) float64 { return p.Price })
	if appliance != "" {
		values = calc.ApplianceCosts(values, appliance)
	}

	return printTable(w, region, appliance, day, values)
}

func printTable(w io.Writer, region types.Region, appliance types.Appliance, day time.Time, values []float64) error {
	title := fmt.Sprintf("%s (%s) %s", region.DisplayName(), region, day.Format(time.DateOnly))
	if appliance != "" {
		title += " " + appliance.String()
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	for i, v := range values {
		if _, err := fmt.Fprintf(w, "%s | %.2f NOK\n", hours.IntervalLabel(i), v); err != nil {
			return err
		}
	}
	return nil
}
