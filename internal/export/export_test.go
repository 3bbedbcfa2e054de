package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocadim/termolog/internal/journal"
)

var exportNow = time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

func sampleRecords() []journal.Assessment {
	return []journal.Assessment{
		{
			ID:        1700000000001,
			Timestamp: "2026-08-28T09:00:00Z",
			Emotion:   "alegria",
			Level:     5,
			AssessmentContext: journal.AssessmentContext{
				Location:         "casa",
				Company:          []string{"família", "amigos"},
				Trigger:          "almoço em grupo",
				Duration:         "horas",
				CopingStrategies: []string{"respiração"},
				SleepHours:       7.5,
				Energy:           8,
				Notes:            "dia ótimo",
			},
		},
		{
			ID:        1700000000002,
			Timestamp: "2026-08-29T10:00:00Z",
			Emotion:   "tristeza",
			Level:     3,
			AssessmentContext: journal.AssessmentContext{
				Notes:    `He said, "hi"`,
				AIAdvice: "conselho gerado",
			},
		},
	}
}

// ─── JSON snapshot ───────────────────────────────────────────────────────────

func TestSnapshotWrapper(t *testing.T) {
	doc := Snapshot(sampleRecords(), exportNow)

	assert.Equal(t, AppName, doc.App)
	assert.Equal(t, SchemaVersion, doc.Version)
	assert.Equal(t, "2026-08-29T15:30:00Z", doc.ExportDate)
	assert.Equal(t, 2, doc.TotalAssessments)
	assert.Len(t, doc.Assessments, 2)
}

func TestSnapshotEmptySetMarshalsAsEmptyArray(t *testing.T) {
	data, err := JSON(nil, exportNow)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"assessments": []`)
	assert.Contains(t, string(data), `"totalAssessments": 0`)
}

func TestJSONFieldNames(t *testing.T) {
	data, err := JSON(sampleRecords(), exportNow)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"app", "version", "exportDate", "totalAssessments", "assessments"} {
		assert.Contains(t, raw, field)
	}
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "termometro-emocional-2026-08-29.json", JSONFileName(exportNow))
	assert.Equal(t, "termometro-emocional-2026-08-29.csv", CSVFileName(exportNow))
	assert.Equal(t, "termometro-anonimo-2026-08-29.json", AnonymousFileName(exportNow))
}

// ─── CSV ─────────────────────────────────────────────────────────────────────

func TestCSVHeaderAndRowCount(t *testing.T) {
	out := CSV(sampleRecords())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Data,Hora,Emoção,Nível,Valência,Arousal,Local,Companhia,Gatilho,Duração,Sono (h),Energia,Estratégias,Notas", lines[0])
}

func TestCSVResolvesAffectFromCatalog(t *testing.T) {
	out := CSV(sampleRecords())
	lines := strings.Split(out, "\n")

	// alegria level 5 = Prazer (8.5, 6.5)
	assert.Contains(t, lines[1], "Alegria,5,8.5,6.5")
	assert.Contains(t, lines[1], "família; amigos")
}

func TestCSVQuotesFieldsWithSpecials(t *testing.T) {
	out := CSV(sampleRecords())

	assert.Contains(t, out, `"He said, ""hi"""`)
}

func TestCSVUnknownEmotionFallsBack(t *testing.T) {
	recs := []journal.Assessment{{
		ID:        1,
		Timestamp: "2026-08-28T09:00:00Z",
		Emotion:   "saudade",
		Level:     3,
	}}
	out := CSV(recs)
	lines := strings.Split(out, "\n")

	// Raw key, blank valence/arousal columns.
	assert.Contains(t, lines[1], "saudade,3,,,")
}

func TestCSVUnparsableTimestamp(t *testing.T) {
	recs := []journal.Assessment{{
		ID:        1,
		Timestamp: "quando foi mesmo?",
		Emotion:   "alegria",
		Level:     1,
	}}
	out := CSV(recs)
	lines := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(lines[1], "quando foi mesmo?,,"))
}

// ─── Anonymization ───────────────────────────────────────────────────────────

func TestAnonymizedReplacesIDsAndTruncatesDates(t *testing.T) {
	doc := Anonymized(sampleRecords(), KeepNotes, exportNow)

	assert.Equal(t, AppNameAnonymous, doc.App)
	require.Len(t, doc.Assessments, 2)

	seen := map[string]bool{}
	for _, a := range doc.Assessments {
		assert.Regexp(t, `^anon-[0-9a-f]{9}$`, a.ID)
		assert.False(t, seen[a.ID], "pseudo-ids must be unique")
		seen[a.ID] = true
		assert.NotContains(t, a.Timestamp, "T", "timestamp must be date-only")
	}
	assert.Equal(t, "2026-08-28", doc.Assessments[0].Timestamp)
	assert.Equal(t, "dia ótimo", doc.Assessments[0].Notes, "keep-notes preserves notes")
}

func TestAnonymizedRedactNotes(t *testing.T) {
	doc := Anonymized(sampleRecords(), RedactNotes, exportNow)

	for _, a := range doc.Assessments {
		assert.Empty(t, a.Notes)
		assert.Empty(t, a.AIAdvice)
	}
	// Structured context survives redaction.
	assert.Equal(t, "casa", doc.Assessments[0].Location)
}

func TestAnonymizedPreservesEmotionAndLevel(t *testing.T) {
	doc := Anonymized(sampleRecords(), KeepNotes, exportNow)

	assert.Equal(t, "alegria", doc.Assessments[0].Emotion)
	assert.Equal(t, 5, doc.Assessments[0].Level)
	assert.Equal(t, "tristeza", doc.Assessments[1].Emotion)
}
