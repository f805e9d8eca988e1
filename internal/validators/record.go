package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the client-generated UUID of a record envelope.
	FieldID = "id"
	// FieldKind targets the record kind tag.
	FieldKind = "kind"
	// FieldTimestamps targets CreatedAt/UpdatedAt ordering of an envelope.
	FieldTimestamps = "timestamps"

	FieldTitle      = "title"
	FieldContent    = "content"
	FieldFrequency  = "frequency"
	FieldStreak     = "streak"
	FieldProgress   = "progress"
	FieldPriority   = "priority"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldOccurredAt = "occurred_at"
)

var (
	amountPattern   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// RecordValidator checks record envelopes and plaintext record bodies before
// they are sealed and queued.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)

	case models.JournalEntry:
		return v.validateJournal(value, fields...)
	case *models.JournalEntry:
		return v.validateJournal(*value, fields...)

	case models.Habit:
		return v.validateHabit(value, fields...)
	case *models.Habit:
		return v.validateHabit(*value, fields...)

	case models.Goal:
		return v.validateGoal(value, fields...)
	case *models.Goal:
		return v.validateGoal(*value, fields...)

	case models.Task:
		return v.validateTask(value, fields...)
	case *models.Task:
		return v.validateTask(*value, fields...)

	case models.Transaction:
		return v.validateTransaction(value, fields...)
	case *models.Transaction:
		return v.validateTransaction(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKind, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidID(r.ID) {
				return ErrInvalidRecordID
			}
		case FieldKind:
			if !r.Kind.Valid() {
				return ErrInvalidKind
			}
		case FieldTimestamps:
			if r.CreatedAt.IsZero() || r.UpdatedAt.Before(r.CreatedAt) {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateJournal(j models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if j.Title == "" && j.Content == "" {
				return ErrEmptyContent
			}
		case FieldContent:
			if j.Content == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateHabit(h models.Habit, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFrequency, FieldStreak}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if h.Name == "" {
				return ErrEmptyTitle
			}
		case FieldFrequency:
			switch h.Frequency {
			case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
			default:
				return ErrInvalidFrequency
			}
		case FieldStreak:
			if h.Streak < 0 {
				return ErrInvalidStreak
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateGoal(g models.Goal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldProgress}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if g.Title == "" {
				return ErrEmptyTitle
			}
		case FieldProgress:
			if g.Progress < 0 || g.Progress > 100 {
				return ErrInvalidProgress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTask(t models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if t.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if t.Priority < 0 {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTransaction(t models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAmount, FieldCurrency, FieldOccurredAt}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if t.Description == "" {
				return ErrEmptyTitle
			}
		case FieldAmount:
			if !amountPattern.MatchString(t.Amount) {
				return ErrInvalidAmount
			}
		case FieldCurrency:
			if !currencyPattern.MatchString(t.Currency) {
				return ErrInvalidCurrency
			}
		case FieldOccurredAt:
			if t.OccurredAt.IsZero() {
				return ErrEmptyOccurredAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
