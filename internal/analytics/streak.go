package analytics

import (
	"time"

	"github.com/brunocadim/termolog/internal/journal"
)

// streakCap bounds the backward walk at one year as a safety net
// against pathological date math.
const streakCap = 365

// Streak counts the consecutive calendar days, ending today or
// yesterday, on which at least one assessment exists. Dates are taken in
// now's location — the user's local calendar, not UTC. A user who logged
// yesterday but not yet today still sees a live streak.
func Streak(recs []journal.Assessment, now time.Time) int {
	if len(recs) == 0 {
		return 0
	}

	loc := now.Location()
	logged := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		t, ok := r.Time()
		if !ok {
			continue
		}
		logged[t.In(loc).Format("2006-01-02")] = struct{}{}
	}

	today := now.Format("2006-01-02")
	yesterdayTime := now.AddDate(0, 0, -1)
	yesterday := yesterdayTime.Format("2006-01-02")

	cursor := now
	if _, ok := logged[today]; !ok {
		if _, ok := logged[yesterday]; !ok {
			return 0
		}
		cursor = yesterdayTime
	}

	streak := 0
	for i := 0; i < streakCap; i++ {
		if _, ok := logged[cursor.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
