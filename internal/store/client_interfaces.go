package store

import (
	"context"

	"github.com/MKhiriev/go-life-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MutationQueue is the durable pending queue of one engine together with its
// dead-letter store. Every method is scoped to the queue name the value was
// created for.
type MutationQueue interface {
	// Enqueue persists a new mutation with zero retries and returns it with
	// the assigned id and timestamp.
	Enqueue(ctx context.Context, mutationType models.MutationType, payload models.Record) (models.Mutation, error)
	// List returns pending mutations in FIFO (timestamp, id) order.
	List(ctx context.Context) ([]models.Mutation, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
	UpdateRetries(ctx context.Context, id int64, retries int) error

	// MoveToDeadLetter inserts mutation into the dead-letter store and removes it
	// from the pending queue in one transaction.
	MoveToDeadLetter(ctx context.Context, mutation models.Mutation, lastErr string) error
	ListDeadLetter(ctx context.Context) ([]models.DeadMutation, error)
	DeleteDeadLetter(ctx context.Context, id int64) error
	// ReviveDeadLetter moves a dead mutation back into the pending queue with
	// retries reset to 0 and a fresh timestamp, in one transaction.
	ReviveDeadLetter(ctx context.Context, id int64) (models.Mutation, error)
}

// RecordRepository stores sealed record envelopes.
type RecordRepository interface {
	// SaveRecord inserts or replaces the record with the same id.
	SaveRecord(ctx context.Context, record models.Record) error
	GetRecord(ctx context.Context, ref models.RecordRef) (models.Record, error)
	// ListRecords returns the non-deleted records of kind, newest first.
	ListRecords(ctx context.Context, kind models.RecordKind) ([]models.Record, error)
}
