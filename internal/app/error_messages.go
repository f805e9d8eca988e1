// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the control API writes into error
// response bodies. Internal error text never reaches the client; each mapped
// error class answers with one of these instead.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for local storage faults and any
	// error without a mapping.
	MsgInternalServerError = "internal server error"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgSessionLocked is returned when a write needs the session key and
	// none is installed.
	MsgSessionLocked = "session is locked"

	MsgUnknownRecordKind = "unknown record kind"

	MsgUnknownEngine = "unknown sync engine"

	MsgInvalidStrategy = "invalid conflict resolution strategy"

	// MsgInvalidSettings is returned when the sync interval is not positive.
	MsgInvalidSettings = "invalid sync settings"

	MsgInvalidSalt = "invalid salt"

	MsgKindMismatch = "record kind does not match the body"

	// MsgDataNotFound is returned when a record or a dead mutation does not
	// exist.
	MsgDataNotFound = "data not found"
)
