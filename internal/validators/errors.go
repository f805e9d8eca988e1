package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID  = errors.New("invalid record id")
	ErrInvalidKind      = errors.New("invalid record kind")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrInvalidFrequency = errors.New("invalid habit frequency")
	ErrInvalidStreak    = errors.New("streak cannot be negative")
	ErrInvalidProgress  = errors.New("progress must be within 0..100")
	ErrInvalidPriority  = errors.New("priority cannot be negative")
	ErrInvalidAmount    = errors.New("amount must be a decimal number")
	ErrInvalidCurrency  = errors.New("currency must be a three-letter ISO code")
	ErrEmptyOccurredAt  = errors.New("occurred_at is required")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
