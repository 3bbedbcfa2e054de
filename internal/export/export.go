// Package export converts the assessment set into portable documents:
// a JSON snapshot (the shape the import engine accepts back), an
// anonymized JSON variant, and a CSV table.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/journal"
)

// Wrapper metadata. The values are part of the backup schema — old
// backups must remain importable.
const (
	AppName          = "Termômetro Emocional"
	AppNameAnonymous = "Termômetro Emocional (Anonimizado)"
	SchemaVersion    = "1.1"
)

// Document is the JSON snapshot wrapper. This exact shape (field names
// and array placement) is what the import engine expects back.
type Document struct {
	App              string               `json:"app"`
	Version          string               `json:"version"`
	ExportDate       string               `json:"exportDate"`
	TotalAssessments int                  `json:"totalAssessments"`
	Assessments      []journal.Assessment `json:"assessments"`
}

// Snapshot wraps the full record sequence with export metadata.
func Snapshot(recs []journal.Assessment, now time.Time) *Document {
	if recs == nil {
		recs = []journal.Assessment{}
	}
	return &Document{
		App:              AppName,
		Version:          SchemaVersion,
		ExportDate:       now.UTC().Format(time.RFC3339),
		TotalAssessments: len(recs),
		Assessments:      recs,
	}
}

// JSON serializes the snapshot document, indented for readability.
func JSON(recs []journal.Assessment, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot(recs, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: serialize snapshot: %w", err)
	}
	return data, nil
}

// Filename helpers embed the export date.

// JSONFileName returns the backup filename for the given date.
func JSONFileName(now time.Time) string {
	return "termometro-emocional-" + now.Format("2006-01-02") + ".json"
}

// CSVFileName returns the spreadsheet filename for the given date.
func CSVFileName(now time.Time) string {
	return "termometro-emocional-" + now.Format("2006-01-02") + ".csv"
}

// AnonymousFileName returns the anonymized backup filename.
func AnonymousFileName(now time.Time) string {
	return "termometro-anonimo-" + now.Format("2006-01-02") + ".json"
}
