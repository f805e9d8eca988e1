package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote side rejects the bearer
	// token, or when the stored token is already known to be expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrVersionConflict is returned when the remote side refuses a mutation
	// because its copy changed concurrently.
	ErrVersionConflict = errors.New("version conflict")

	// ErrBadRequest is returned when the remote side rejects the payload.
	ErrBadRequest = errors.New("bad request")

	// ErrRemote wraps every other non-success response.
	ErrRemote = errors.New("remote backend error")

	// ErrNotReady is wrapped by adapters whose side cannot take writes yet
	// for a local reason that clears on its own (a locked session). The engine
	// leaves such a mutation pending without counting the attempt.
	ErrNotReady = errors.New("remote side is not ready")

	// ErrInvalidAddress is returned by constructors for unusable addresses.
	ErrInvalidAddress = errors.New("invalid remote address")
)
