// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordBody is the plaintext content of a record. Each implementation is
// bound to exactly one [RecordKind]; the set of implementations is closed.
type RecordBody interface {
	Kind() RecordKind
	// Heading is a short human-readable title used for vault file headings.
	Heading() string
}

// JournalEntry is a free-form diary note.
type JournalEntry struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func (JournalEntry) Kind() RecordKind  { return KindJournal }
func (j JournalEntry) Heading() string { return j.Title }

// HabitFrequency is how often a habit is expected to be performed.
type HabitFrequency string

const (
	FrequencyDaily   HabitFrequency = "daily"
	FrequencyWeekly  HabitFrequency = "weekly"
	FrequencyMonthly HabitFrequency = "monthly"
)

// Habit is a recurring activity with a completion streak.
type Habit struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Frequency   HabitFrequency `json:"frequency"`
	Streak      int            `json:"streak"`
}

func (Habit) Kind() RecordKind  { return KindHabit }
func (h Habit) Heading() string { return h.Name }

// Goal is a long-running objective with a progress percentage.
type Goal struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	// Progress is a percentage in [0, 100].
	Progress int `json:"progress"`
}

func (Goal) Kind() RecordKind  { return KindGoal }
func (g Goal) Heading() string { return g.Title }

// Task is a single to-do item.
type Task struct {
	Title    string     `json:"title"`
	Notes    string     `json:"notes,omitempty"`
	Due      *time.Time `json:"due,omitempty"`
	Done     bool       `json:"done"`
	Priority int        `json:"priority"`
}

func (Task) Kind() RecordKind  { return KindTask }
func (t Task) Heading() string { return t.Title }

// Transaction is a finance entry. Amount is kept as a decimal string so that
// no precision is lost through float conversion.
type Transaction struct {
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (Transaction) Kind() RecordKind  { return KindTransaction }
func (t Transaction) Heading() string { return t.Description }

// NewBody returns a pointer to the zero value of the body type bound to kind,
// ready to be used as a JSON decoding target.
func NewBody(kind RecordKind) (RecordBody, error) {
	switch kind {
	case KindJournal:
		return &JournalEntry{}, nil
	case KindHabit:
		return &Habit{}, nil
	case KindGoal:
		return &Goal{}, nil
	case KindTask:
		return &Task{}, nil
	case KindTransaction:
		return &Transaction{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordKind, kind)
	}
}

// DecodeBody unmarshals data into the concrete body type bound to kind and
// returns it by value.
func DecodeBody(kind RecordKind, data []byte) (RecordBody, error) {
	target, err := NewBody(kind)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("decode %s body: %w", kind, err)
	}
	return deref(target), nil
}

func deref(b RecordBody) RecordBody {
	switch v := b.(type) {
	case *JournalEntry:
		return *v
	case *Habit:
		return *v
	case *Goal:
		return *v
	case *Task:
		return *v
	case *Transaction:
		return *v
	default:
		return b
	}
}
