// Package analytics derives presentation-ready structures from the live
// record set: logging streaks, frequency counts, the emotional weather
// classification, trend and correlation series, and the monthly calendar
// rollup. Everything here is a pure function over its inputs — all state
// lives in the journal store.
package analytics

import (
	"sort"
	"time"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
)

// AllTimeDays is the window value that disables the trailing-day cutoff
// entirely instead of comparing against a year-old boundary.
const AllTimeDays = 365

// Filter narrows the record set before aggregation.
type Filter struct {
	// Emotion restricts to one scale key; empty or "all" keeps every
	// record.
	Emotion catalog.Key
	// Days is the trailing-window day count; values of AllTimeDays or
	// more disable the cutoff.
	Days int
}

// All matches every record.
var All = Filter{Days: AllTimeDays}

// Apply returns the records matching f, sorted most recent first.
// Records with unparsable timestamps survive an all-time filter but are
// excluded by any trailing window.
func Apply(recs []journal.Assessment, f Filter, now time.Time) []journal.Assessment {
	out := make([]journal.Assessment, 0, len(recs))
	cutoff := now.AddDate(0, 0, -f.Days)
	windowed := f.Days > 0 && f.Days < AllTimeDays

	for _, r := range recs {
		if f.Emotion != "" && f.Emotion != "all" && r.Emotion != f.Emotion {
			continue
		}
		if windowed {
			t, ok := r.Time()
			if !ok || t.Before(cutoff) {
				continue
			}
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i].Time()
		tj, _ := out[j].Time()
		return tj.Before(ti)
	})
	return out
}

// chronological returns recs sorted ascending by timestamp.
func chronological(recs []journal.Assessment) []journal.Assessment {
	out := make([]journal.Assessment, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i].Time()
		tj, _ := out[j].Time()
		return ti.Before(tj)
	})
	return out
}
