package vault

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-life-keeper/models"
)

const frontMatterDelim = "---"

// frontMatter is the YAML header of a vault note. It carries the whole
// envelope, so a note can be turned back into a record without the body.
type frontMatter struct {
	ID        string            `yaml:"id"`
	Kind      models.RecordKind `yaml:"kind"`
	CreatedAt time.Time         `yaml:"created_at"`
	UpdatedAt time.Time         `yaml:"updated_at"`
	Deleted   bool              `yaml:"deleted"`
	Sealed    string            `yaml:"sealed"`
}

func newFrontMatter(r models.Record) frontMatter {
	return frontMatter{
		ID:        r.ID,
		Kind:      r.Kind,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
		Deleted:   r.Deleted,
		Sealed:    r.Sealed,
	}
}

func (f frontMatter) record() models.Record {
	return models.Record{
		ID:        f.ID,
		Kind:      f.Kind,
		Sealed:    f.Sealed,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		Deleted:   f.Deleted,
	}
}

// encodeNote renders record as front matter followed by the markdown body.
func encodeNote(record models.Record, body models.RecordBody) ([]byte, error) {
	header, err := yaml.Marshal(newFrontMatter(record))
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelim + "\n")
	buf.Write(header)
	buf.WriteString(frontMatterDelim + "\n\n")
	buf.WriteString(renderBody(body))

	return buf.Bytes(), nil
}

// decodeNote parses the front matter of a note. The markdown body is ignored.
func decodeNote(data []byte) (models.Record, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	rest, ok := strings.CutPrefix(text, frontMatterDelim+"\n")
	if !ok {
		return models.Record{}, fmt.Errorf("%w: missing opening delimiter", ErrMalformedNote)
	}
	header, _, ok := strings.Cut(rest, "\n"+frontMatterDelim)
	if !ok {
		return models.Record{}, fmt.Errorf("%w: missing closing delimiter", ErrMalformedNote)
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrMalformedNote, err)
	}
	if fm.ID == "" || !fm.Kind.Valid() {
		return models.Record{}, fmt.Errorf("%w: missing id or kind", ErrMalformedNote)
	}

	return fm.record(), nil
}

func renderBody(body models.RecordBody) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", heading(body))

	switch v := body.(type) {
	case *models.JournalEntry:
		renderJournal(&b, *v)
	case models.JournalEntry:
		renderJournal(&b, v)
	case *models.Habit:
		renderHabit(&b, *v)
	case models.Habit:
		renderHabit(&b, v)
	case *models.Goal:
		renderGoal(&b, *v)
	case models.Goal:
		renderGoal(&b, v)
	case *models.Task:
		renderTask(&b, *v)
	case models.Task:
		renderTask(&b, v)
	case *models.Transaction:
		renderTransaction(&b, *v)
	case models.Transaction:
		renderTransaction(&b, v)
	}

	return b.String()
}

func heading(body models.RecordBody) string {
	if h := strings.TrimSpace(body.Heading()); h != "" {
		return h
	}
	return "Untitled " + string(body.Kind())
}

func renderJournal(b *strings.Builder, j models.JournalEntry) {
	if j.Mood != "" {
		fmt.Fprintf(b, "\n**Mood:** %s\n", j.Mood)
	}
	if len(j.Tags) > 0 {
		b.WriteString("\n")
		for i, tag := range j.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("#" + strings.ReplaceAll(tag, " ", "-"))
		}
		b.WriteString("\n")
	}
	if j.Content != "" {
		fmt.Fprintf(b, "\n%s\n", j.Content)
	}
}

func renderHabit(b *strings.Builder, h models.Habit) {
	fmt.Fprintf(b, "\n- **Frequency:** %s\n- **Streak:** %d\n", h.Frequency, h.Streak)
	if h.Description != "" {
		fmt.Fprintf(b, "\n%s\n", h.Description)
	}
}

func renderGoal(b *strings.Builder, g models.Goal) {
	fmt.Fprintf(b, "\n- **Progress:** %d%%\n", g.Progress)
	if g.TargetDate != nil {
		fmt.Fprintf(b, "- **Target date:** %s\n", g.TargetDate.Format(time.DateOnly))
	}
	if g.Description != "" {
		fmt.Fprintf(b, "\n%s\n", g.Description)
	}
}

func renderTask(b *strings.Builder, t models.Task) {
	check := " "
	if t.Done {
		check = "x"
	}
	fmt.Fprintf(b, "\n- [%s] %s\n- **Priority:** %d\n", check, t.Title, t.Priority)
	if t.Due != nil {
		fmt.Fprintf(b, "- **Due:** %s\n", t.Due.Format(time.DateOnly))
	}
	if t.Notes != "" {
		fmt.Fprintf(b, "\n%s\n", t.Notes)
	}
}

func renderTransaction(b *strings.Builder, t models.Transaction) {
	fmt.Fprintf(b, "\n| Amount | Currency | Category | Date |\n|---|---|---|---|\n| %s | %s | %s | %s |\n",
		t.Amount, t.Currency, t.Category, t.OccurredAt.Format(time.DateOnly))
}
