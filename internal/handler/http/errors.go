package http

import "errors"

var (
	ErrUnknownEngine = errors.New("unknown sync engine")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrInvalidID = errors.New("invalid id")

	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
