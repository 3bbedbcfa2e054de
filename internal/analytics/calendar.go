package analytics

import (
	"time"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
)

// CalendarDay is one cell of the monthly rollup grid. Day 0 marks a
// leading blank cell padding the first of the month to its weekday.
type CalendarDay struct {
	Day     int         `json:"day"`
	Date    string      `json:"date,omitempty"`
	HasData bool        `json:"hasData"`
	Emotion catalog.Key `json:"emotion,omitempty"`
	Level   int         `json:"level,omitempty"`
}

// Calendar rolls the records up into now's local month: for each day the
// single dominant record — highest level, most recent timestamp as the
// tie-break — or "no data". Leading blanks align day 1 with its weekday
// (Sunday-first grid).
func Calendar(recs []journal.Assessment, now time.Time) []CalendarDay {
	loc := now.Location()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := startOfMonth.AddDate(0, 1, -1).Day()

	// Bucket records by local day of this month.
	type top struct {
		rec journal.Assessment
		at  time.Time
	}
	byDay := make(map[int]top)
	for _, r := range recs {
		t, ok := r.Time()
		if !ok {
			continue
		}
		local := t.In(loc)
		if local.Year() != now.Year() || local.Month() != now.Month() {
			continue
		}
		d := local.Day()
		cur, exists := byDay[d]
		if !exists || r.Level > cur.rec.Level || (r.Level == cur.rec.Level && local.After(cur.at)) {
			byDay[d] = top{rec: r, at: local}
		}
	}

	grid := make([]CalendarDay, 0, daysInMonth+6)
	for i := 0; i < int(startOfMonth.Weekday()); i++ {
		grid = append(grid, CalendarDay{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cell := CalendarDay{
			Day:  d,
			Date: time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, loc).Format("2006-01-02"),
		}
		if t, ok := byDay[d]; ok {
			cell.HasData = true
			cell.Emotion = t.rec.Emotion
			cell.Level = t.rec.Level
		}
		grid = append(grid, cell)
	}
	return grid
}
