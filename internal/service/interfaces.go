// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic: the generic sync
// engine ([SyncManager]) that drains a durable mutation queue into a
// [adapter.RemoteAdapter], the connectivity monitor that drives its online
// flag, and the record service the presentation layer writes through.
package service

import (
	"context"

	"github.com/MKhiriev/go-life-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Unsubscribe detaches a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// SyncEngine is the surface of one sync engine used by the record service,
// the control API and the workers. [*SyncManager] implements it.
type SyncEngine interface {
	Name() string

	// Enqueue persists a mutation and refreshes the pending count.
	Enqueue(ctx context.Context, mutationType models.MutationType, payload models.Record) (models.Mutation, error)

	// TriggerDrain requests a background drain and returns immediately.
	TriggerDrain()

	// Drain runs one pass over the pending queue. A pass that cannot start
	// (offline, or another pass in flight) returns a report with Skipped set.
	Drain(ctx context.Context) (models.DrainReport, error)

	Status() models.SyncStatus
	SetOnline(online bool)

	Strategy() models.Strategy
	SetStrategy(strategy models.Strategy)

	Settings() models.SyncSettings
	// Configure replaces the background cadence, restarting the timer.
	Configure(settings models.SyncSettings) error

	// Conflicts returns the unresolved conflicts found by the last pass.
	Conflicts() []models.Conflict

	ListDeadLetter(ctx context.Context) ([]models.DeadMutation, error)
	RetryDeadLetter(ctx context.Context, id int64) (models.Mutation, error)
	DeleteDeadLetter(ctx context.Context, id int64) error

	OnStatusChanged(fn func(models.SyncStatus)) Unsubscribe
	OnSyncStarted(fn func()) Unsubscribe
	OnSyncCompleted(fn func(models.DrainReport)) Unsubscribe
	OnQueueUpdated(fn func(pending int)) Unsubscribe
	OnConflictsDetected(fn func([]models.Conflict)) Unsubscribe
}

// RecordWriter persists a conflict winner back into the local record table.
type RecordWriter interface {
	SaveRecord(ctx context.Context, record models.Record) error
}

// RecordService is the domain write path of the presentation layer. Bodies
// are sealed before they reach the store and opened again on read.
type RecordService interface {
	Create(ctx context.Context, body models.RecordBody) (models.RecordView, error)
	Update(ctx context.Context, ref models.RecordRef, body models.RecordBody) (models.RecordView, error)
	Delete(ctx context.Context, ref models.RecordRef) error

	// Get and List return views whose Body is nil when the session is locked
	// or the record cannot be opened with the current key.
	Get(ctx context.Context, ref models.RecordRef) (models.RecordView, error)
	List(ctx context.Context, kind models.RecordKind) ([]models.RecordView, error)

	// Unlock derives the session key from password and salt and installs it.
	Unlock(ctx context.Context, password string, salt []byte) error
	// Lock clears the session key.
	Lock(ctx context.Context) error
	Unlocked() bool
}
