package service

import "errors"

var (
	// ErrSessionLocked is returned by record writes while no session key is
	// installed.
	ErrSessionLocked = errors.New("session is locked")

	// ErrKindMismatch is returned when a record body does not belong to the
	// kind it is written under.
	ErrKindMismatch = errors.New("record body does not match record kind")

	// ErrInvalidRecordBody wraps validator failures of a plaintext body.
	ErrInvalidRecordBody = errors.New("invalid record body")

	// ErrInvalidSettings is returned by Configure for a non-positive interval.
	ErrInvalidSettings = errors.New("invalid sync settings")

	// ErrInvalidSalt is returned by Unlock for an empty salt.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrStorage marks a local storage fault that aborted a drain pass.
	ErrStorage = errors.New("local storage failure")
)
