package vault

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-life-keeper/models"
)

var noteTime = time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)

func noteRecord() models.Record {
	return models.Record{
		ID:        "0197a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Kind:      models.KindTask,
		Sealed:    "bm9uY2UtY2lwaGVydGV4dA==",
		CreatedAt: noteTime,
		UpdatedAt: noteTime.Add(time.Minute),
	}
}

func TestEncodeNote_FrontMatterCarriesEnvelope(t *testing.T) {
	record := noteRecord()

	data, err := encodeNote(record, models.Task{Title: "Buy milk", Priority: 1})
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "---\nid: "+record.ID+"\n"))
	assert.Contains(t, text, "kind: task\n")
	assert.Contains(t, text, record.Sealed)
	assert.Contains(t, text, "# Buy milk\n")
	assert.Contains(t, text, "- [ ] Buy milk\n")

	got, err := decodeNote(data)
	require.NoError(t, err)
	assert.True(t, got.Same(record))
	assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
}

func TestDecodeNote_ToleratesCRLF(t *testing.T) {
	data, err := encodeNote(noteRecord(), models.Task{Title: "x"})
	require.NoError(t, err)

	got, err := decodeNote([]byte(strings.ReplaceAll(string(data), "\n", "\r\n")))
	require.NoError(t, err)
	assert.True(t, got.Same(noteRecord()))
}

func TestDecodeNote_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no front matter", data: "# just markdown\n"},
		{name: "unterminated", data: "---\nid: a\nkind: task\n"},
		{name: "bad yaml", data: "---\nid: [a\n---\n"},
		{name: "missing id", data: "---\nkind: task\n---\n"},
		{name: "unknown kind", data: "---\nid: a\nkind: note\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeNote([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedNote)
		})
	}
}

func TestRenderBody(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		body models.RecordBody
		want []string
	}{
		{
			name: "journal",
			body: &models.JournalEntry{Title: "Monday", Content: "Quiet day.", Mood: "calm", Tags: []string{"work", "long walk"}},
			want: []string{"# Monday\n", "**Mood:** calm", "#work #long-walk", "Quiet day."},
		},
		{
			name: "habit",
			body: models.Habit{Name: "Read", Frequency: models.FrequencyDaily, Streak: 12},
			want: []string{"# Read\n", "**Frequency:** daily", "**Streak:** 12"},
		},
		{
			name: "goal",
			body: models.Goal{Title: "Marathon", Progress: 40, TargetDate: &due},
			want: []string{"# Marathon\n", "**Progress:** 40%", "**Target date:** 2026-04-01"},
		},
		{
			name: "done task",
			body: &models.Task{Title: "Ship", Done: true, Due: &due, Notes: "v1"},
			want: []string{"- [x] Ship", "**Due:** 2026-04-01", "\nv1\n"},
		},
		{
			name: "transaction",
			body: models.Transaction{Description: "Coffee", Amount: "-3.50", Currency: "EUR", OccurredAt: due},
			want: []string{"# Coffee\n", "| -3.50 | EUR |  | 2026-04-01 |"},
		},
		{
			name: "untitled",
			body: models.Task{},
			want: []string{"# Untitled task\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBody(tt.body)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}
