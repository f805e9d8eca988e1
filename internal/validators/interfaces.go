// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plaintext record bodies before they are sealed
// and queued.
//
// [NewRecordValidator] accepts every body kind (journal entry, habit, goal,
// task, transaction) and the sealed record envelope, by value or by pointer.
// Validation can be narrowed to named fields.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Unknown field names yield [ErrUnknownField]; unsupported value types yield
// [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
