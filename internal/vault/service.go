package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/crypto"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/models"
)

// DefaultInterval is the vault drain cadence.
const DefaultInterval = 5 * time.Second

// Service runs the vault exporter: a sync engine on the vault queue, a
// writability probe that keeps it online, and a file watcher.
type Service struct {
	Adapter *Adapter
	Engine  *service.SyncManager

	monitor *service.ConnectivityMonitor
	watcher *Watcher
	logger  *logger.Logger
}

// NewService wires the exporter. Strategy, retry ceiling and apply timeout
// follow the remote engine's settings.
func NewService(storages *store.ClientStorages, cryptoService crypto.Service, cfg config.ClientVault, workers config.ClientWorkers, log *logger.Logger) *Service {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	a := NewAdapter(cfg.Dir, cryptoService, log)
	engine := service.NewSyncManager(storages.Queue(models.QueueVault), a, nil, service.SyncOptions{
		Name:         models.QueueVault,
		MaxRetries:   workers.MaxRetries,
		Interval:     interval,
		Enabled:      true,
		ApplyTimeout: workers.ApplyTimeout,
		Strategy:     workers.Strategy,
	}, log)

	return &Service{
		Adapter: a,
		Engine:  engine,
		monitor: service.NewConnectivityMonitor(a, interval, log, engine),
		watcher: NewWatcher(cfg.Dir, engine.TriggerDrain, a.OwnWrite, DefaultDebounce, log),
		logger:  log.WithComponent("vault"),
	}
}

// Start probes the directory, starts the engine timer and the watcher.
func (s *Service) Start(ctx context.Context) error {
	if err := s.Adapter.Ping(ctx); err != nil {
		return fmt.Errorf("vault %s: %w", s.Adapter.Dir(), err)
	}
	s.Engine.SetOnline(true)

	if err := s.Engine.Start(ctx); err != nil {
		return err
	}
	if err := s.watcher.Start(); err != nil {
		s.Engine.Close()
		return err
	}
	s.monitor.Start(ctx)

	s.logger.Info().Str("func", "Service.Start").Str("dir", s.Adapter.Dir()).Msg("vault exporter started")
	return nil
}

// Close stops the watcher, the probe and the engine. It does not wait for an
// in-flight drain; call Engine.Wait for that.
func (s *Service) Close() error {
	s.monitor.Stop()
	err := s.watcher.Stop()
	s.Engine.Close()
	return err
}
