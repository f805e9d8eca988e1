package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/adapter"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
)

const DefaultProbeInterval = 15 * time.Second

// OnlineSetter receives connectivity changes.
type OnlineSetter interface {
	SetOnline(online bool)
}

// ConnectivityMonitor probes a health endpoint on a fixed cadence and
// forwards the result to its targets.
type ConnectivityMonitor struct {
	checker  adapter.HealthChecker
	targets  []OnlineSetter
	interval time.Duration
	timeout  time.Duration
	job      *syncJob
	logger   *logger.Logger
}

// NewConnectivityMonitor returns an idle monitor. A probe is bounded by
// interval, so a hanging backend reads as offline on the next tick.
func NewConnectivityMonitor(checker adapter.HealthChecker, interval time.Duration, log *logger.Logger, targets ...OnlineSetter) *ConnectivityMonitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}

	c := &ConnectivityMonitor{
		checker:  checker,
		targets:  targets,
		interval: interval,
		timeout:  interval,
		logger:   log.WithComponent("connectivity"),
	}
	c.job = newSyncJob(func(ctx context.Context) { c.Probe(ctx) }, true)

	return c
}

// Start probes once immediately, then every interval, until ctx is done or
// Stop is called.
func (c *ConnectivityMonitor) Start(ctx context.Context) {
	c.job.Start(ctx, c.interval)
}

func (c *ConnectivityMonitor) Stop() {
	c.job.Stop()
}

// Probe pings the backend once and reports the result to every target.
func (c *ConnectivityMonitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.checker.Ping(probeCtx)
	if ctx.Err() != nil {
		return false
	}

	online := err == nil
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "ConnectivityMonitor.Probe").Msg("backend unreachable")
	}

	for _, t := range c.targets {
		t.SetOnline(online)
	}

	return online
}
