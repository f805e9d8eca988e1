// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ApplyMutationRequest is the body sent to the remote backend to apply one
// queued mutation.
type ApplyMutationRequest struct {
	Type    MutationType `json:"type"`
	Payload Record       `json:"payload"`
}

// FetchRecordRequest asks the remote backend for its copy of a record.
type FetchRecordRequest struct {
	Ref RecordRef `json:"ref"`
}

// FetchRecordResponse carries the remote copy, or Found=false when the
// backend has never seen the record.
type FetchRecordResponse struct {
	Found  bool    `json:"found"`
	Record *Record `json:"record,omitempty"`
}

// PingRequest and PingResponse are the health-probe messages.
type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// RecordWriteRequest is the control API body for record create/update. Body
// is decoded into the concrete [RecordBody] selected by the URL kind.
type RecordWriteRequest struct {
	Body json.RawMessage `json:"body"`
}

// RecordView is a decrypted record returned to the presentation layer.
// Body is nil when the session is locked or the record cannot be opened.
type RecordView struct {
	Record
	Body RecordBody `json:"body,omitempty"`
}

// StrategyRequest changes the conflict resolution strategy.
type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

// SettingsRequest changes the background cadence. IntervalMs keeps the
// millisecond granularity of the UI contract.
type SettingsRequest struct {
	Enabled    bool  `json:"enabled"`
	IntervalMs int64 `json:"interval_ms"`
}

// OnlineRequest reports a connectivity change observed by the host.
type OnlineRequest struct {
	Online bool `json:"online"`
}

// UnlockRequest derives the session key from the master password and the
// per-user salt (standard base64).
type UnlockRequest struct {
	Password string `json:"password"`
	Salt     string `json:"salt"`
}

// StatusResponse is returned by the status endpoint for both engines.
type StatusResponse struct {
	Remote   SyncStatus  `json:"remote"`
	Vault    *SyncStatus `json:"vault,omitempty"`
	Strategy Strategy    `json:"strategy"`
	Unlocked bool        `json:"unlocked"`
}
