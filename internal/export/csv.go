package export

import (
	"strconv"
	"strings"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
)

// csvHeader is the fixed column order of the spreadsheet export.
var csvHeader = []string{
	"Data", "Hora", "Emoção", "Nível", "Valência", "Arousal",
	"Local", "Companhia", "Gatilho", "Duração", "Sono (h)", "Energia",
	"Estratégias", "Notas",
}

// CSV renders the record set as comma-delimited UTF-8 text, one row per
// record. Emotion names and valence/arousal resolve through the catalog;
// an unknown emotion falls back to its raw key and blank affect columns.
func CSV(recs []journal.Assessment) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeader, ","))

	for _, r := range recs {
		date, clock := localDateTime(r)
		lvl, lvlOK := catalog.ResolveLevel(r.Emotion, r.Level)

		valence, arousal := "", ""
		if lvlOK {
			valence = formatFloat(lvl.Valence)
			arousal = formatFloat(lvl.Arousal)
		}

		row := []string{
			date,
			clock,
			escapeField(catalog.DisplayName(r.Emotion)),
			strconv.Itoa(r.Level),
			valence,
			arousal,
			escapeField(r.Location),
			escapeField(strings.Join(r.Company, "; ")),
			escapeField(r.Trigger),
			escapeField(r.Duration),
			formatFloat(r.SleepHours),
			strconv.Itoa(r.Energy),
			escapeField(strings.Join(r.CopingStrategies, "; ")),
			escapeField(r.Notes),
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(row, ","))
	}

	return sb.String()
}

// localDateTime splits a record timestamp into local dd/mm/yyyy and
// hh:mm:ss columns. Unparsable timestamps yield the raw string and a
// blank clock rather than failing the whole export.
func localDateTime(r journal.Assessment) (string, string) {
	t, ok := r.Time()
	if !ok {
		return escapeField(r.Timestamp), ""
	}
	local := t.Local()
	return local.Format("02/01/2006"), local.Format("15:04:05")
}

// formatFloat renders a number without exponent or trailing zeros
// ("6.5", "3").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeField applies standard CSV quoting per field: a value containing
// a double quote, comma, or line break is wrapped in double quotes with
// internal quotes doubled. Everything else passes through untouched.
func escapeField(s string) string {
	if !strings.ContainsAny(s, "\",\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
