package workout

import (
	"sort"
	"time"
)

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006-1-2",
}

func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Streak counts consecutive days with a completed workout, walking back from today.
// A gap of one day without a workout breaks the run, an empty today does too.
// Entries dated after today are ignored, as are entries with an unreadable date.
func Streak(entries []LogEntry, today time.Time) int {
	loc := today.Location()
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		d, err := ParseDate(e.Date, loc)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	cursor := midnight(today)
	streak := 0
	for _, d := range dates {
		diff := daysBetween(d, cursor)
		switch {
		case diff < 0:
			continue
		case diff == streak:
			streak++
		case diff > streak:
			return streak
		}
		// diff < streak: same day seen twice
	}
	return streak
}
