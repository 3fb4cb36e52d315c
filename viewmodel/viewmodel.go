package viewmodel

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/hvakosterstrommen"
	"github.com/angas/pricepulse/slice"
	"github.com/angas/pricepulse/types"
)

type Model struct {
	logger   *slog.Logger
	provider types.SpotPriceProvider
	timeout  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	state   UiState
	fetchID uint64
	subs    map[uint64]chan UiState
	nextSub uint64

	inFlight sync.WaitGroup
}

type Option func(*Model)

// WithClock replaces the clock that decides which day's prices are fetched.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func WithFetchTimeout(timeout time.Duration) Option {
	return func(m *Model) { m.timeout = timeout }
}

func New(logger *slog.Logger, provider types.SpotPriceProvider, initial UiState, opts ...Option) *Model {
	m := &Model{
		logger:   logger,
		provider: provider,
		timeout:  30 * time.Second,
		now:      time.Now,
		state:    initial,
		subs:     make(map[uint64]chan UiState),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) State() UiState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe returns a channel that first receives the current state and then
// every following one. A subscriber that falls behind only gets the latest.
func (m *Model) Subscribe() (<-chan UiState, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan UiState, 1)
	ch <- m.state
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
}

// update applies fn to a copy of the state and publishes the result.
func (m *Model) update(fn func(s UiState) UiState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = fn(m.state)
	m.publishLocked()
}

func (m *Model) publishLocked() {
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		ch <- m.state
	}
}

func (m *Model) ChangeRegion(region types.Region) {
	m.mu.Lock()
	if m.state.CurrentRegion == region {
		m.mu.Unlock()
		return
	}
	m.state.CurrentRegion = region
	// Prices of the previous region must never be shown under the new one.
	m.state.ElectricityPrices = nil
	m.publishLocked()
	m.mu.Unlock()

	m.Refresh()
}

func (m *Model) SetGraphVisible(visible bool) {
	m.update(func(s UiState) UiState {
		s.ShowGraph = visible
		return s
	})
}

func (m *Model) ChangeAppliance(appliance types.Appliance) {
	m.update(func(s UiState) UiState {
		s.Appliance = appliance
		return s
	})
}

func (m *Model) ChangeLimit(limit float64) {
	m.update(func(s UiState) UiState {
		s.MaxPrice = calc.ClampLimit(limit)
		return s
	})
}

func (m *Model) SetCurrentHour(hour int) {
	if hour < 0 || hour > 23 {
		m.logger.Warn("ignoring invalid hour", slog.Int("hour", hour))
		return
	}
	m.update(func(s UiState) UiState {
		s.CurrentHour = hour
		return s
	})
}

// Refresh fetches today's prices for the current region in the background.
// The result replaces the price list unless a newer fetch was started since.
func (m *Model) Refresh() {
	m.mu.Lock()
	m.fetchID++
	id := m.fetchID
	region := m.state.CurrentRegion
	m.mu.Unlock()

	m.inFlight.Add(1)
	go func() {
		defer m.inFlight.Done()
		prices := m.fetch(region)

		m.mu.Lock()
		defer m.mu.Unlock()
		if id != m.fetchID {
			m.logger.Debug("discarding superseded price fetch", slog.String("region", region.String()))
			return
		}
		m.state.ElectricityPrices = prices
		m.publishLocked()
	}()
}

// Wait blocks until all started fetches have completed.
func (m *Model) Wait() {
	m.inFlight.Wait()
}

func (m *Model) fetch(region types.Region) []float64 {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	data, err := m.provider.GetSpotPrices(ctx, region, m.now())
	if err != nil {
		m.logFetchError(region, err)
		return []float64{}
	}

	m.logger.Debug("fetched spot prices", slog.String("region", region.String()), slog.Int("count", len(data)))
	return slice.Map(data, func(p types.SpotPrice) float64 { return p.Price })
}

func (m *Model) logFetchError(region types.Region, err error) {
	var statusErr *hvakosterstrommen.StatusError
	if !errors.As(err, &statusErr) {
		m.logger.Error("something went wrong fetching spot prices",
			slog.String("region", region.String()),
			slog.Any("error", err))
		return
	}

	attrs := []any{
		slog.String("region", region.String()),
		slog.Int("status", statusErr.StatusCode),
		slog.String("url", statusErr.URL),
	}
	switch statusErr.Class() {
	case hvakosterstrommen.StatusClassRedirect:
		m.logger.Debug("spot price request redirected", attrs...)
	case hvakosterstrommen.StatusClassClient:
		m.logger.Error("spot price request rejected", attrs...)
	case hvakosterstrommen.StatusClassServer:
		m.logger.Error("spot price server error", attrs...)
	default:
		m.logger.Error("unexpected spot price response", attrs...)
	}
}
