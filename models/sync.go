// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is a snapshot of an engine's state as seen by the UI.
type SyncStatus struct {
	IsOnline     bool `json:"is_online"`
	IsSyncing    bool `json:"is_syncing"`
	PendingCount int  `json:"pending_count"`
}

// SyncSettings controls the background drain cadence.
type SyncSettings struct {
	Enabled  bool          `json:"enabled"`
	Interval time.Duration `json:"interval"`
}

// Conflict describes a mutation left pending because its record diverged
// from the remote copy and no strategy picked a winner.
type Conflict struct {
	Mutation Mutation `json:"mutation"`
	Local    Record   `json:"local"`
	Remote   Record   `json:"remote"`
}

// DrainReport summarizes one drain pass.
type DrainReport struct {
	// Skipped is true when the pass did not run (offline or already draining).
	Skipped   bool `json:"skipped"`
	Processed int  `json:"processed"`
	Applied   int  `json:"applied"`
	// Superseded counts mutations settled without an apply call because the
	// remote copy won the conflict.
	Superseded int `json:"superseded"`
	// Deferred counts mutations the remote side could not take yet; they
	// stay pending with retries unchanged and end the pass.
	Deferred     int `json:"deferred"`
	Failed       int `json:"failed"`
	DeadLettered int `json:"dead_lettered"`
	Conflicts    int `json:"conflicts"`
}
