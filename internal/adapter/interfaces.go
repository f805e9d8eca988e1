// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// remote backend the sync engine reconciles with.
//
// The primary abstraction is [RemoteAdapter], the only capability the sync
// engine needs: fetch the remote version of a record and apply one mutation.
// The package ships an HTTP/REST implementation ([NewHTTPRemoteAdapter]) and
// a gRPC implementation ([NewGRPCRemoteAdapter]). The vault exporter in
// internal/vault is a third, file-backed implementation.
//
// Transport errors are mapped to the sentinel values defined in errors.go so
// that callers can use [errors.Is] regardless of protocol (e.g.
// [ErrVersionConflict] for HTTP 409 / gRPC Aborted).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-life-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter is the remote side of one sync engine.
type RemoteAdapter interface {
	// FetchRemoteVersion returns the remote copy of the record identified by
	// ref, or nil with a nil error when the remote side has no such record.
	FetchRemoteVersion(ctx context.Context, ref models.RecordRef) (*models.Record, error)

	// ApplyMutation makes the remote side reflect payload. Any error counts
	// as a failed attempt, except one wrapping [ErrNotReady].
	ApplyMutation(ctx context.Context, mutationType models.MutationType, payload models.Record) error
}

// HealthChecker probes whether the remote side is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Remote is a [RemoteAdapter] that can also report its reachability.
type Remote interface {
	RemoteAdapter
	HealthChecker

	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Close releases transport resources.
	Close() error
}
