package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-life-keeper/internal/adapter"
	"github.com/MKhiriev/go-life-keeper/internal/conflict"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/store"
	"github.com/MKhiriev/go-life-keeper/models"
)

const (
	DefaultMaxRetries   = 5
	DefaultSyncInterval = 60 * time.Second
	DefaultApplyTimeout = 30 * time.Second
)

// SyncOptions configures one [SyncManager]. Zero numeric fields and an empty
// strategy take their defaults; Enabled is used as given.
type SyncOptions struct {
	// Name tags log entries, e.g. "remote" or "vault".
	Name         string
	MaxRetries   int
	Interval     time.Duration
	Enabled      bool
	ApplyTimeout time.Duration
	Strategy     models.Strategy
}

// DefaultSyncOptions returns the options of the remote engine.
func DefaultSyncOptions() SyncOptions {
	return SyncOptions{
		Name:         models.QueueRemote,
		MaxRetries:   DefaultMaxRetries,
		Interval:     DefaultSyncInterval,
		Enabled:      true,
		ApplyTimeout: DefaultApplyTimeout,
		Strategy:     models.StrategyNewerWins,
	}
}

func (o SyncOptions) withDefaults() SyncOptions {
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.Interval <= 0 {
		o.Interval = DefaultSyncInterval
	}
	if o.ApplyTimeout <= 0 {
		o.ApplyTimeout = DefaultApplyTimeout
	}
	if o.Strategy == "" {
		o.Strategy = models.StrategyNewerWins
	}
	return o
}

// SyncManager drains one durable mutation queue into one remote adapter.
//
// At most one drain pass runs at a time; a pass requested while another is in
// flight, or while offline, is skipped. Each pending mutation gets exactly one
// attempt per pass. A failed attempt bumps its retry counter and the mutation
// moves to the dead-letter store once the counter reaches MaxRetries. An
// attempt the remote side defers with [adapter.ErrNotReady] is not counted.
type SyncManager struct {
	name         string
	queue        store.MutationQueue
	remote       adapter.RemoteAdapter
	records      RecordWriter
	maxRetries   int
	applyTimeout time.Duration

	online   atomic.Bool
	draining atomic.Bool
	pending  atomic.Int64

	mu        sync.RWMutex
	strategy  models.Strategy
	settings  models.SyncSettings
	conflicts []models.Conflict
	runCtx    context.Context
	cancel    context.CancelFunc
	started   bool
	closed    bool

	job      *syncJob
	inflight sync.WaitGroup
	events   syncEvents

	logger *logger.Logger
}

// NewSyncManager builds an engine over queue and remote. records may be nil,
// in which case conflict winners are not written back locally. The engine
// starts offline and idle; call Start to run the background timer.
func NewSyncManager(queue store.MutationQueue, remote adapter.RemoteAdapter, records RecordWriter, opts SyncOptions, log *logger.Logger) *SyncManager {
	opts = opts.withDefaults()

	m := &SyncManager{
		name:         opts.Name,
		queue:        queue,
		remote:       remote,
		records:      records,
		maxRetries:   opts.MaxRetries,
		applyTimeout: opts.ApplyTimeout,
		strategy:     opts.Strategy,
		settings:     models.SyncSettings{Enabled: opts.Enabled, Interval: opts.Interval},
		runCtx:       context.Background(),
		logger:       log.WithComponent("sync." + opts.Name),
	}
	m.job = newSyncJob(func(context.Context) { m.TriggerDrain() }, false)

	return m
}

func (m *SyncManager) Name() string {
	return m.name
}

// Start loads the pending count and, when enabled, starts the background
// timer. Cancelling ctx has the same effect as Close.
func (m *SyncManager) Start(ctx context.Context) error {
	m.mu.Lock()
	m.runCtx, m.cancel = context.WithCancel(ctx)
	m.started = true
	m.closed = false
	settings := m.settings
	runCtx := m.runCtx
	m.mu.Unlock()

	// The job calls back into m, so it is started outside the lock.
	if settings.Enabled {
		m.job.Start(runCtx, settings.Interval)
	}

	if err := m.refreshPending(runCtx); err != nil {
		return fmt.Errorf("%w: count pending mutations: %w", ErrStorage, err)
	}

	m.logger.Info().
		Str("func", "SyncManager.Start").
		Bool("enabled", settings.Enabled).
		Dur("interval", settings.Interval).
		Msg("sync engine started")

	return nil
}

// Close stops the background timer and cancels the context of any in-flight
// pass. It does not wait for that pass; use Wait for that.
func (m *SyncManager) Close() {
	m.mu.Lock()
	cancel := m.cancel
	m.started = false
	m.closed = true
	m.mu.Unlock()

	m.job.Stop()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until drains started by TriggerDrain have returned. After Close,
// TriggerDrain starts nothing new, so Wait cannot miss a late pass.
func (m *SyncManager) Wait() {
	m.inflight.Wait()
}

// Enqueue implements SyncEngine.
func (m *SyncManager) Enqueue(ctx context.Context, mutationType models.MutationType, payload models.Record) (models.Mutation, error) {
	if err := mutationType.Validate(); err != nil {
		return models.Mutation{}, err
	}

	mutation, err := m.queue.Enqueue(ctx, mutationType, payload)
	if err != nil {
		return models.Mutation{}, fmt.Errorf("enqueue %s mutation: %w", mutationType, err)
	}

	if err = m.refreshPending(ctx); err != nil {
		return mutation, fmt.Errorf("refresh pending count: %w", err)
	}

	return mutation, nil
}

// TriggerDrain implements SyncEngine.
func (m *SyncManager) TriggerDrain() {
	if !m.online.Load() || m.draining.Load() {
		return
	}

	// Add happens under the lock Close takes, so Wait never races it.
	m.mu.Lock()
	if m.closed || m.runCtx.Err() != nil {
		m.mu.Unlock()
		return
	}
	ctx := m.runCtx
	m.inflight.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.inflight.Done()
		if _, err := m.Drain(ctx); err != nil {
			m.logger.Err(err).Str("func", "SyncManager.TriggerDrain").Msg("background drain aborted")
		}
	}()
}

// Status implements SyncEngine.
func (m *SyncManager) Status() models.SyncStatus {
	return models.SyncStatus{
		IsOnline:     m.online.Load(),
		IsSyncing:    m.draining.Load(),
		PendingCount: int(m.pending.Load()),
	}
}

// SetOnline implements SyncEngine. Going online triggers a drain.
func (m *SyncManager) SetOnline(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	m.logger.Info().Str("func", "SyncManager.SetOnline").Bool("online", online).Msg("connectivity changed")
	m.events.statusChanged.emit(m.Status())

	if online {
		m.TriggerDrain()
	}
}

// Strategy implements SyncEngine.
func (m *SyncManager) Strategy() models.Strategy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strategy
}

// SetStrategy implements SyncEngine. The new strategy applies from the next
// resolution on.
func (m *SyncManager) SetStrategy(strategy models.Strategy) {
	m.mu.Lock()
	m.strategy = strategy
	m.mu.Unlock()
}

// Settings implements SyncEngine.
func (m *SyncManager) Settings() models.SyncSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Configure implements SyncEngine.
func (m *SyncManager) Configure(settings models.SyncSettings) error {
	if settings.Interval <= 0 {
		return ErrInvalidSettings
	}

	m.mu.Lock()
	m.settings = settings
	started, runCtx := m.started, m.runCtx
	m.mu.Unlock()

	if !started {
		return nil
	}

	m.job.Stop()
	if settings.Enabled {
		m.job.Start(runCtx, settings.Interval)
	}

	return nil
}

// Conflicts implements SyncEngine.
func (m *SyncManager) Conflicts() []models.Conflict {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Conflict(nil), m.conflicts...)
}

// ListDeadLetter implements SyncEngine.
func (m *SyncManager) ListDeadLetter(ctx context.Context) ([]models.DeadMutation, error) {
	return m.queue.ListDeadLetter(ctx)
}

// RetryDeadLetter implements SyncEngine. The revived mutation starts over
// with zero retries.
func (m *SyncManager) RetryDeadLetter(ctx context.Context, id int64) (models.Mutation, error) {
	mutation, err := m.queue.ReviveDeadLetter(ctx, id)
	if err != nil {
		return models.Mutation{}, err
	}

	if err = m.refreshPending(ctx); err != nil {
		return mutation, fmt.Errorf("refresh pending count: %w", err)
	}
	m.TriggerDrain()

	return mutation, nil
}

// DeleteDeadLetter implements SyncEngine.
func (m *SyncManager) DeleteDeadLetter(ctx context.Context, id int64) error {
	if err := m.queue.DeleteDeadLetter(ctx, id); err != nil {
		return err
	}

	return m.refreshPending(ctx)
}

func (m *SyncManager) OnStatusChanged(fn func(models.SyncStatus)) Unsubscribe {
	return m.events.statusChanged.add(fn)
}

func (m *SyncManager) OnSyncStarted(fn func()) Unsubscribe {
	return m.events.syncStarted.add(func(struct{}) { fn() })
}

func (m *SyncManager) OnSyncCompleted(fn func(models.DrainReport)) Unsubscribe {
	return m.events.syncCompleted.add(fn)
}

func (m *SyncManager) OnQueueUpdated(fn func(pending int)) Unsubscribe {
	return m.events.queueUpdated.add(fn)
}

func (m *SyncManager) OnConflictsDetected(fn func([]models.Conflict)) Unsubscribe {
	return m.events.conflictsDetected.add(fn)
}

func (m *SyncManager) refreshPending(ctx context.Context) error {
	n, err := m.queue.Count(ctx)
	if err != nil {
		return err
	}

	m.pending.Store(int64(n))
	m.events.queueUpdated.emit(n)

	return nil
}

// Drain implements SyncEngine.
func (m *SyncManager) Drain(ctx context.Context) (models.DrainReport, error) {
	if !m.online.Load() {
		return models.DrainReport{Skipped: true}, nil
	}
	if !m.draining.CompareAndSwap(false, true) {
		m.logger.Debug().Str("func", "SyncManager.Drain").Msg("drain already in progress, skipping")
		return models.DrainReport{Skipped: true}, nil
	}

	m.events.statusChanged.emit(m.Status())
	m.events.syncStarted.emit(struct{}{})

	started := time.Now()
	report, err := m.drain(ctx)

	m.draining.Store(false)

	// The pass may have been cancelled; the count must still be refreshed.
	if refreshErr := m.refreshPending(context.WithoutCancel(ctx)); refreshErr != nil && err == nil {
		err = fmt.Errorf("%w: count pending mutations: %w", ErrStorage, refreshErr)
	}

	m.events.statusChanged.emit(m.Status())
	m.events.syncCompleted.emit(report)

	event := m.logger.Info()
	if err != nil {
		event = m.logger.Error().Err(err)
	}
	event.
		Str("func", "SyncManager.Drain").
		Int("processed", report.Processed).
		Int("applied", report.Applied).
		Int("superseded", report.Superseded).
		Int("deferred", report.Deferred).
		Int("failed", report.Failed).
		Int("dead_lettered", report.DeadLettered).
		Int("conflicts", report.Conflicts).
		Dur("took", time.Since(started)).
		Msg("drain pass finished")

	return report, err
}

type outcome int

const (
	outcomeApplied outcome = iota
	outcomeSuperseded
	outcomeConflict
	outcomeFailed
	outcomeDeadLettered
	outcomeCancelled
	outcomeDeferred
)

func (m *SyncManager) drain(ctx context.Context) (models.DrainReport, error) {
	var report models.DrainReport

	// Store writes must not be torn by teardown.
	storeCtx := context.WithoutCancel(ctx)

	mutations, err := m.queue.List(storeCtx)
	if err != nil {
		return report, fmt.Errorf("%w: list pending mutations: %w", ErrStorage, err)
	}

	strategy := m.Strategy()
	var conflicts []models.Conflict

loop:
	for _, mutation := range mutations {
		if ctx.Err() != nil {
			break
		}

		result, c, err := m.process(ctx, storeCtx, mutation, strategy)
		if err != nil {
			return report, fmt.Errorf("%w: mutation %d: %w", ErrStorage, mutation.ID, err)
		}

		switch result {
		case outcomeCancelled:
			continue
		case outcomeDeferred:
			// Later mutations may touch the same record; keep FIFO order.
			report.Deferred++
			break loop
		case outcomeApplied:
			report.Applied++
		case outcomeSuperseded:
			report.Superseded++
		case outcomeConflict:
			report.Conflicts++
			conflicts = append(conflicts, c)
		case outcomeFailed:
			report.Failed++
		case outcomeDeadLettered:
			report.Failed++
			report.DeadLettered++
		}
		report.Processed++
	}

	m.mu.Lock()
	m.conflicts = conflicts
	m.mu.Unlock()

	if len(conflicts) > 0 {
		m.events.conflictsDetected.emit(conflicts)
	}

	return report, nil
}

// process makes one attempt at mutation. The returned error is reserved for
// local storage faults; remote failures are folded into the outcome.
func (m *SyncManager) process(ctx, storeCtx context.Context, mutation models.Mutation, strategy models.Strategy) (outcome, models.Conflict, error) {
	log := m.logger.With().
		Str("func", "SyncManager.process").
		Int64("mutation_id", mutation.ID).
		Str("type", string(mutation.Type)).
		Str("record", mutation.Payload.Ref().String()).
		Logger()

	attemptCtx, cancel := context.WithTimeout(ctx, m.applyTimeout)
	defer cancel()

	payload := mutation.Payload

	remote, err := m.remote.FetchRemoteVersion(attemptCtx, payload.Ref())
	if err != nil {
		return m.fail(ctx, storeCtx, mutation, fmt.Errorf("fetch remote version: %w", err))
	}

	if conflict.HasConflict(payload, remote) {
		resolved, ok := conflict.Resolve(payload, *remote, strategy)
		if !ok {
			log.Info().Str("strategy", string(strategy)).Msg("conflict needs manual resolution")
			return outcomeConflict, models.Conflict{Mutation: mutation, Local: payload, Remote: *remote}, nil
		}

		if resolved.Same(*remote) {
			// The remote side already holds the winner.
			if err = m.writeBack(storeCtx, resolved); err != nil {
				return 0, models.Conflict{}, err
			}
			if err = m.settle(storeCtx, mutation.ID); err != nil {
				return 0, models.Conflict{}, err
			}
			log.Debug().Str("strategy", string(strategy)).Msg("remote version kept")
			return outcomeSuperseded, models.Conflict{}, nil
		}
		payload = resolved
	}

	if err = m.remote.ApplyMutation(attemptCtx, mutation.Type, payload); err != nil {
		return m.fail(ctx, storeCtx, mutation, fmt.Errorf("apply mutation: %w", err))
	}

	if err = m.settle(storeCtx, mutation.ID); err != nil {
		return 0, models.Conflict{}, err
	}

	return outcomeApplied, models.Conflict{}, nil
}

// settle removes a finished mutation and publishes the new pending count.
func (m *SyncManager) settle(ctx context.Context, id int64) error {
	if err := m.queue.Delete(ctx, id); err != nil {
		return err
	}
	return m.refreshPending(ctx)
}

func (m *SyncManager) writeBack(ctx context.Context, record models.Record) error {
	if m.records == nil {
		return nil
	}
	return m.records.SaveRecord(ctx, record)
}

// fail records one failed attempt, escalating to the dead-letter store once
// the retry ceiling is reached. A failure caused by cancellation of the pass
// itself is not counted, and neither is one wrapping [adapter.ErrNotReady],
// which defers the mutation and ends the pass.
func (m *SyncManager) fail(ctx, storeCtx context.Context, mutation models.Mutation, cause error) (outcome, models.Conflict, error) {
	if ctx.Err() != nil {
		return outcomeCancelled, models.Conflict{}, nil
	}
	if errors.Is(cause, adapter.ErrNotReady) {
		m.logger.Info().
			Err(cause).
			Str("func", "SyncManager.fail").
			Int64("mutation_id", mutation.ID).
			Msg("remote side not ready, mutation deferred")
		return outcomeDeferred, models.Conflict{}, nil
	}

	retries := mutation.Retries + 1
	log := m.logger.Warn().
		Err(cause).
		Str("func", "SyncManager.fail").
		Int64("mutation_id", mutation.ID).
		Int("retries", retries)

	if retries >= m.maxRetries {
		mutation.Retries = retries
		if err := m.queue.MoveToDeadLetter(storeCtx, mutation, cause.Error()); err != nil {
			return 0, models.Conflict{}, err
		}
		if err := m.refreshPending(storeCtx); err != nil {
			return 0, models.Conflict{}, err
		}
		log.Msg("retry ceiling reached, mutation dead-lettered")
		return outcomeDeadLettered, models.Conflict{}, nil
	}

	if err := m.queue.UpdateRetries(storeCtx, mutation.ID, retries); err != nil {
		return 0, models.Conflict{}, err
	}
	log.Msg("apply attempt failed")

	return outcomeFailed, models.Conflict{}, nil
}

var _ SyncEngine = (*SyncManager)(nil)
