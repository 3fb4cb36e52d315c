package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

type Prober interface {
	Probe(ctx context.Context) error
}

type HTTPProber struct {
	URL    string
	Client *http.Client
}

func (p HTTPProber) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	// Any answer at all means the network is up.
	return nil
}

type OnChange func(prev, curr Status)

type Observer struct {
	logger    *slog.Logger
	prober    Prober
	interval  time.Duration
	lostAfter int

	mu        sync.RWMutex
	status    Status
	failures  int
	listeners []OnChange
	lastOK    lastSuccess
}

func NewObserver(logger *slog.Logger, prober Prober, interval time.Duration, lostAfter int) *Observer {
	if lostAfter < 1 {
		lostAfter = 1
	}
	return &Observer{
		logger:    logger,
		prober:    prober,
		interval:  interval,
		lostAfter: lostAfter,
		status:    Unavailable,
	}
}

// OnChange registers a listener. Listeners are called from the probing
// goroutine, only when the status actually changes.
func (o *Observer) OnChange(fn OnChange) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, fn)
}

func (o *Observer) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

func (o *Observer) SinceLastSuccess() time.Duration {
	return o.lastOK.Elapsed()
}

// Run probes until ctx is done. With a zero interval probing is disabled
// and the network is assumed to be available.
func (o *Observer) Run(ctx context.Context) {
	if o.interval <= 0 {
		o.logger.Info("connectivity probing disabled")
		o.set(Available)
		return
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	o.ProbeOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.ProbeOnce(ctx)
		}
	}
}

func (o *Observer) ProbeOnce(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, o.interval/2+time.Second)
	defer cancel()

	err := o.prober.Probe(probeCtx)
	if ctx.Err() != nil {
		return
	}

	o.mu.Lock()
	if err != nil {
		o.failures++
		o.logger.Debug("connectivity probe failed", slog.Int("failures", o.failures), slog.Any("error", err))
	} else {
		o.failures = 0
		o.lastOK.Reset()
	}
	status := next(o.status, err == nil, o.failures, o.lostAfter)
	o.mu.Unlock()

	o.set(status)
}

func (o *Observer) set(status Status) {
	o.mu.Lock()
	prev := o.status
	if prev == status {
		o.mu.Unlock()
		return
	}
	o.status = status
	listeners := append([]OnChange(nil), o.listeners...)
	o.mu.Unlock()

	o.logger.Info("connectivity changed", slog.String("from", prev.String()), slog.String("to", status.String()))
	for _, fn := range listeners {
		fn(prev, status)
	}
}
