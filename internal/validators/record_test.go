// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-life-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecord() models.Record {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Record{
		ID:        "01956a3c-7a8e-7c4e-9b1e-2f0a6b7c8d9e",
		Kind:      models.KindTask,
		Sealed:    "sealed",
		CreatedAt: now,
		UpdatedAt: now.Add(time.Minute),
	}
}

func validTransaction() models.Transaction {
	return models.Transaction{
		Description: "coffee",
		Amount:      "-3.50",
		Currency:    "EUR",
		OccurredAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewRecordValidator(t *testing.T) {
	v := NewRecordValidator()
	require.NotNil(t, v)
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	err := NewRecordValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRecordValidator_PointerAndValue(t *testing.T) {
	v := NewRecordValidator()
	task := models.Task{Title: "write tests"}

	assert.NoError(t, v.Validate(context.Background(), task))
	assert.NoError(t, v.Validate(context.Background(), &task))
}

func TestRecordValidator_UnknownField(t *testing.T) {
	err := NewRecordValidator().Validate(context.Background(), models.Task{Title: "x"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Envelope
// ---------------------------------------------------------------------------

func TestRecordValidator_Record(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Record)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.Record) {}},
		{name: "bad id", mutate: func(r *models.Record) { r.ID = "not-a-uuid" }, wantErr: ErrInvalidRecordID},
		{name: "bad kind", mutate: func(r *models.Record) { r.Kind = "note" }, wantErr: ErrInvalidKind},
		{name: "zero created", mutate: func(r *models.Record) { r.CreatedAt = time.Time{} }, wantErr: ErrInvalidTimestamp},
		{
			name:    "updated before created",
			mutate:  func(r *models.Record) { r.UpdatedAt = r.CreatedAt.Add(-time.Second) },
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)

			err := NewRecordValidator().Validate(context.Background(), r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Record_FieldScoping(t *testing.T) {
	r := validRecord()
	r.ID = ""

	assert.NoError(t, NewRecordValidator().Validate(context.Background(), r, FieldKind))
	assert.ErrorIs(t, NewRecordValidator().Validate(context.Background(), r, FieldID), ErrInvalidRecordID)
}

// ---------------------------------------------------------------------------
// Bodies
// ---------------------------------------------------------------------------

func TestRecordValidator_Bodies(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		wantErr error
	}{
		{name: "journal with content only", body: models.JournalEntry{Content: "today"}},
		{name: "empty journal", body: models.JournalEntry{}, wantErr: ErrEmptyContent},
		{name: "habit", body: models.Habit{Name: "run", Frequency: models.FrequencyDaily}},
		{name: "habit without name", body: models.Habit{Frequency: models.FrequencyDaily}, wantErr: ErrEmptyTitle},
		{name: "habit bad frequency", body: models.Habit{Name: "run", Frequency: "hourly"}, wantErr: ErrInvalidFrequency},
		{name: "habit negative streak", body: models.Habit{Name: "run", Frequency: models.FrequencyWeekly, Streak: -1}, wantErr: ErrInvalidStreak},
		{name: "goal", body: models.Goal{Title: "marathon", Progress: 100}},
		{name: "goal over 100", body: models.Goal{Title: "marathon", Progress: 101}, wantErr: ErrInvalidProgress},
		{name: "task", body: models.Task{Title: "buy milk", Priority: 2}},
		{name: "task negative priority", body: models.Task{Title: "buy milk", Priority: -1}, wantErr: ErrInvalidPriority},
		{name: "task without title", body: models.Task{}, wantErr: ErrEmptyTitle},
		{name: "transaction", body: validTransaction()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRecordValidator().Validate(context.Background(), tt.body)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Transaction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *models.Transaction)
		wantErr error
	}{
		{name: "integer amount", mutate: func(tx *models.Transaction) { tx.Amount = "12" }},
		{name: "float-like amount", mutate: func(tx *models.Transaction) { tx.Amount = "1e3" }, wantErr: ErrInvalidAmount},
		{name: "empty amount", mutate: func(tx *models.Transaction) { tx.Amount = "" }, wantErr: ErrInvalidAmount},
		{name: "lowercase currency", mutate: func(tx *models.Transaction) { tx.Currency = "eur" }, wantErr: ErrInvalidCurrency},
		{name: "missing date", mutate: func(tx *models.Transaction) { tx.OccurredAt = time.Time{} }, wantErr: ErrEmptyOccurredAt},
		{name: "missing description", mutate: func(tx *models.Transaction) { tx.Description = "" }, wantErr: ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := NewRecordValidator().Validate(context.Background(), &tx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
