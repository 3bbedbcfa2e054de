package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brunocadim/termolog/internal/journal"
)

// NotesPolicy controls whether free-text notes survive anonymization.
type NotesPolicy string

const (
	// KeepNotes preserves notes in the anonymized document.
	KeepNotes NotesPolicy = "keep-notes"
	// RedactNotes blanks notes and AI advice for sensitive targets.
	RedactNotes NotesPolicy = "redact-notes"
)

// AnonymousAssessment mirrors Assessment with the id replaced by a
// pseudo-identifier and the timestamp truncated to date granularity.
// The string id keeps a re-imported anonymized file from colliding with
// real integer ids.
type AnonymousAssessment struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Emotion   string `json:"emotion"`
	Level     int    `json:"level"`
	journal.AssessmentContext
}

// AnonymousDocument is the anonymized snapshot wrapper.
type AnonymousDocument struct {
	App              string                `json:"app"`
	Version          string                `json:"version"`
	ExportDate       string                `json:"exportDate"`
	TotalAssessments int                   `json:"totalAssessments"`
	Assessments      []AnonymousAssessment `json:"assessments"`
}

// Anonymized builds the anonymized snapshot: pseudo-ids, date-only
// timestamps, notes per policy.
func Anonymized(recs []journal.Assessment, policy NotesPolicy, now time.Time) *AnonymousDocument {
	out := make([]AnonymousAssessment, 0, len(recs))
	for _, r := range recs {
		anon := AnonymousAssessment{
			ID:                pseudoID(),
			Timestamp:         dateOnly(r.Timestamp),
			Emotion:           string(r.Emotion),
			Level:             r.Level,
			AssessmentContext: r.AssessmentContext,
		}
		if policy == RedactNotes {
			anon.Notes = ""
			anon.AIAdvice = ""
		}
		out = append(out, anon)
	}
	return &AnonymousDocument{
		App:              AppNameAnonymous,
		Version:          SchemaVersion,
		ExportDate:       now.UTC().Format(time.RFC3339),
		TotalAssessments: len(out),
		Assessments:      out,
	}
}

// AnonymizedJSON serializes the anonymized snapshot.
func AnonymizedJSON(recs []journal.Assessment, policy NotesPolicy, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(Anonymized(recs, policy, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: serialize anonymized snapshot: %w", err)
	}
	return data, nil
}

// pseudoID generates a short random alphanumeric token, visibly distinct
// from the integer ids of live records.
func pseudoID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "anon-" + token[:9]
}

// dateOnly truncates a timestamp to date granularity, dropping the
// time of day. Unparsable timestamps are truncated textually.
func dateOnly(ts string) string {
	if t, ok := journal.ParseTimestamp(ts); ok {
		return t.UTC().Format("2006-01-02")
	}
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
