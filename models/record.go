// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// ErrUnknownRecordKind is returned when a kind tag does not name one of the
// supported record kinds.
var ErrUnknownRecordKind = errors.New("unknown record kind")

// RecordKind names one of the synchronized domain collections.
type RecordKind string

const (
	KindJournal     RecordKind = "journal"
	KindHabit       RecordKind = "habit"
	KindGoal        RecordKind = "goal"
	KindTask        RecordKind = "task"
	KindTransaction RecordKind = "transaction"
)

// RecordKinds lists every supported kind in a stable order.
var RecordKinds = []RecordKind{KindJournal, KindHabit, KindGoal, KindTask, KindTransaction}

// Valid reports whether k is one of [RecordKinds].
func (k RecordKind) Valid() bool {
	for _, known := range RecordKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseRecordKind converts a raw tag (e.g. from a URL path) into a [RecordKind].
func ParseRecordKind(raw string) (RecordKind, error) {
	k := RecordKind(raw)
	if !k.Valid() {
		return "", ErrUnknownRecordKind
	}
	return k, nil
}

// Record is the envelope that is persisted locally and exchanged with the
// remote backend. Sensitive content never appears in plaintext here: Sealed
// holds the encrypted JSON of the kind-specific [RecordBody].
type Record struct {
	// ID is the client-generated identifier (UUIDv7) shared by every copy of
	// the record.
	ID string `json:"id" yaml:"id"`

	// Kind selects the concrete [RecordBody] type sealed inside the envelope.
	Kind RecordKind `json:"kind" yaml:"kind"`

	// Sealed is base64(nonce || AES-GCM ciphertext) of the body JSON.
	Sealed string `json:"sealed" yaml:"sealed"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is the last-write timestamp compared during conflict detection.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	Deleted bool `json:"deleted" yaml:"deleted"`

	// BaseUpdatedAt is the UpdatedAt of the version a queued write was made on
	// top of. It travels with mutations only and is zero for creates.
	BaseUpdatedAt time.Time `json:"base_updated_at,omitzero" yaml:"-"`
}

// Ref returns the identity of the record.
func (r Record) Ref() RecordRef {
	return RecordRef{Kind: r.Kind, ID: r.ID}
}

// Same reports whether r and other are byte-for-byte the same version.
func (r Record) Same(other Record) bool {
	return r.ID == other.ID &&
		r.Kind == other.Kind &&
		r.Sealed == other.Sealed &&
		r.Deleted == other.Deleted &&
		r.UpdatedAt.Equal(other.UpdatedAt)
}

// RecordRef identifies a record across the local store and remote backends.
type RecordRef struct {
	Kind RecordKind `json:"kind"`
	ID   string     `json:"id"`
}

// String renders the reference as "kind/id", the form used in logs and URLs.
func (r RecordRef) String() string {
	return string(r.Kind) + "/" + r.ID
}
