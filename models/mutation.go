// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidMutationType is returned when a mutation type tag cannot be
// split into a known kind and operation.
var ErrInvalidMutationType = errors.New("invalid mutation type")

// Queue names used to namespace the pending and dead-letter stores.
const (
	QueueRemote = "remote"
	QueueVault  = "vault"
)

// Op is the write operation carried by a mutation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// MutationType is the domain operation tag "<kind>.<op>", e.g. "task.update".
type MutationType string

// NewMutationType builds the tag for the given kind and operation.
func NewMutationType(kind RecordKind, op Op) MutationType {
	return MutationType(string(kind) + "." + string(op))
}

// Kind returns the record kind part of the tag.
func (t MutationType) Kind() RecordKind {
	kind, _, _ := strings.Cut(string(t), ".")
	return RecordKind(kind)
}

// Op returns the operation part of the tag.
func (t MutationType) Op() Op {
	_, op, _ := strings.Cut(string(t), ".")
	return Op(op)
}

// Validate checks that both parts of the tag are known.
func (t MutationType) Validate() error {
	if !t.Kind().Valid() {
		return ErrInvalidMutationType
	}
	switch t.Op() {
	case OpCreate, OpUpdate, OpDelete:
		return nil
	default:
		return ErrInvalidMutationType
	}
}

// Mutation is a local write that has not been confirmed by the remote side.
type Mutation struct {
	// ID is assigned by the local store and grows monotonically.
	ID int64 `json:"id"`

	// Queue is the namespace the mutation belongs to ([QueueRemote], [QueueVault]).
	Queue string `json:"queue"`

	Type MutationType `json:"type"`

	// Payload is the record version to apply. The queue never interprets it.
	Payload Record `json:"payload"`

	// Timestamp is the local creation time; it defines FIFO order.
	Timestamp time.Time `json:"timestamp"`

	// Retries counts failed apply attempts.
	Retries int `json:"retries"`
}

// DeadMutation is a mutation that exhausted its retry budget and waits for a
// manual retry or deletion.
type DeadMutation struct {
	Mutation
	FailedAt  time.Time `json:"failed_at"`
	LastError string    `json:"last_error,omitempty"`
}
