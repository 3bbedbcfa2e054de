// Package journal implements the persistent assessment store: a bounded
// key-value slot holding the serialized assessment sequence plus a theme
// preference, with quota-aware writes and backup import/merge.
package journal

import (
	"time"

	"github.com/brunocadim/termolog/internal/catalog"
)

// Theme is the stored UI theme preference.
type Theme string

// Accepted theme values. Anything else degrades to ThemeDark on read.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AssessmentContext is the situational metadata attached to a logging
// event. All fields are caller-supplied and free-form; numeric fields may
// be out of their nominal range when they arrive via import.
type AssessmentContext struct {
	Location         string   `json:"location"`
	Company          []string `json:"company"`
	Trigger          string   `json:"trigger"`
	Duration         string   `json:"duration"`
	CopingStrategies []string `json:"copingStrategies"`
	SleepHours       float64  `json:"sleepHours"`
	Energy           int      `json:"energy"`
	Notes            string   `json:"notes"`
	AIAdvice         string   `json:"aiAdvice,omitempty"`
	SecondaryEmotion string   `json:"secondaryEmotion,omitempty"`
	Valence          *float64 `json:"valence,omitempty"`
	Arousal          *float64 `json:"arousal,omitempty"`
}

// Assessment is one persisted mood-logging event. ID is unique within
// the store and is the merge key for import; Timestamp is the logical
// event time as an ISO-8601 instant.
type Assessment struct {
	ID        int64       `json:"id"`
	Timestamp string      `json:"timestamp"`
	Emotion   catalog.Key `json:"emotion"`
	Level     int         `json:"level"`
	AssessmentContext
}

// Time parses the assessment timestamp. The bool is false when the
// timestamp is empty or unparsable; such records are excluded from
// date-based aggregation rather than crashing it.
func (a Assessment) Time() (time.Time, bool) {
	return ParseTimestamp(a.Timestamp)
}

// timestampLayouts are accepted on read. RFC 3339 is what the store
// writes; the date-only form appears in anonymized exports.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-ish timestamp string.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AppendParams is the raw payload the UI layer hands to the store on
// save. Timestamp is an optional override; when empty the store assigns
// the current instant.
type AppendParams struct {
	Emotion   catalog.Key
	Level     int
	Timestamp string
	Context   AssessmentContext
}

// AppendResult reports a successful save. Warning is non-empty when the
// write succeeded only by evicting old records.
type AppendResult struct {
	Assessment Assessment
	Warning    string
}

// ImportResult reports a successful merge. Added counts the records
// actually folded in after id deduplication.
type ImportResult struct {
	Added   int
	Warning string
}
