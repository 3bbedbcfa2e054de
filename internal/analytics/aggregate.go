package analytics

import (
	"sort"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
)

// FrequencyCount is one bar of the emotion distribution.
type FrequencyCount struct {
	Emotion catalog.Key `json:"emotion"`
	Name    string      `json:"name"`
	Count   int         `json:"count"`
}

// Frequencies groups the records by emotion key and counts occurrences,
// sorted descending by count. Records whose key is unknown to the
// catalog are skipped.
func Frequencies(recs []journal.Assessment) []FrequencyCount {
	counts := make(map[catalog.Key]int)
	for _, r := range recs {
		if !catalog.Known(r.Emotion) {
			continue
		}
		counts[r.Emotion]++
	}

	out := make([]FrequencyCount, 0, len(counts))
	for _, key := range catalog.Keys() {
		if n, ok := counts[key]; ok {
			out = append(out, FrequencyCount{Emotion: key, Name: catalog.DisplayName(key), Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// DefaultWeatherWindow is how many recent records feed the weather
// classification.
const DefaultWeatherWindow = 10

// Weather labels, from calm skies to storms.
const (
	WeatherStable    = "Estável/Positivo"
	WeatherTurbulent = "Turbulento"
	WeatherLowEnergy = "Baixa Energia"
	WeatherVariable  = "Variável"
)

// Weather is the coarse four-bucket classification of the recent
// emotional climate.
type Weather struct {
	Label      string  `json:"label"`
	Desc       string  `json:"desc"`
	AvgValence float64 `json:"avgValence"`
	AvgArousal float64 `json:"avgArousal"`
	Sample     int     `json:"sample"`
}

// EmotionalWeather averages the valence/arousal of the most recent
// window records (recs must be sorted most recent first, as Apply
// returns them) and classifies via fixed thresholds. Level lookups that
// miss the catalog contribute the neutral midpoint. Returns nil when no
// records are in scope.
func EmotionalWeather(recs []journal.Assessment, window int) *Weather {
	if len(recs) == 0 {
		return nil
	}
	if window <= 0 {
		window = DefaultWeatherWindow
	}
	if len(recs) > window {
		recs = recs[:window]
	}

	var sumValence, sumArousal float64
	for _, r := range recs {
		affect := catalog.Affects(r.Emotion, r.Level)
		sumValence += affect.Valence
		sumArousal += affect.Arousal
	}
	n := float64(len(recs))
	w := &Weather{
		AvgValence: sumValence / n,
		AvgArousal: sumArousal / n,
		Sample:     len(recs),
	}

	switch {
	case w.AvgValence > 6:
		w.Label, w.Desc = WeatherStable, "Indicadores de bem-estar presentes."
	case w.AvgValence < 4 && w.AvgArousal > 6:
		w.Label, w.Desc = WeatherTurbulent, "Alta reatividade emocional detectada."
	case w.AvgValence < 4:
		w.Label, w.Desc = WeatherLowEnergy, "Sinais de melancolia ou exaustão."
	default:
		w.Label, w.Desc = WeatherVariable, "Flutuações naturais de humor."
	}
	return w
}

// TrendPoint is one record on the time-ordered intensity series.
type TrendPoint struct {
	Index   int    `json:"idx"`
	Date    string `json:"date"`
	Level   int    `json:"level"`
	Emotion string `json:"emotion"`
}

// Trend returns the records sorted ascending by timestamp, each point
// carrying its short date label, level, and resolved emotion name.
func Trend(recs []journal.Assessment) []TrendPoint {
	ordered := chronological(recs)
	out := make([]TrendPoint, 0, len(ordered))
	for i, r := range ordered {
		label := r.Timestamp
		if t, ok := r.Time(); ok {
			label = t.Local().Format("02/01")
		}
		out = append(out, TrendPoint{
			Index:   i + 1,
			Date:    label,
			Level:   r.Level,
			Emotion: catalog.DisplayName(r.Emotion),
		})
	}
	return out
}

// SleepPoint pairs a record's sleep hours with its intensity level — a
// scatter dataset with no aggregation, one point per record.
type SleepPoint struct {
	Sleep     float64 `json:"sleep"`
	Intensity int     `json:"intensity"`
	Emotion   string  `json:"emotion"`
	Timestamp string  `json:"timestamp"`
}

// SleepCorrelation emits one (sleepHours, level) pair per record.
func SleepCorrelation(recs []journal.Assessment) []SleepPoint {
	out := make([]SleepPoint, 0, len(recs))
	for _, r := range recs {
		out = append(out, SleepPoint{
			Sleep:     r.SleepHours,
			Intensity: r.Level,
			Emotion:   catalog.DisplayName(r.Emotion),
			Timestamp: r.Timestamp,
		})
	}
	return out
}
