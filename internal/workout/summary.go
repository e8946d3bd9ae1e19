package workout

import (
	"fmt"
	"strings"
	"time"
)

type CalendarDay struct {
	Date      string `json:"date"`
	SessionID string `json:"session_id"`
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

type Summary struct {
	Month          string        `json:"month"`
	CompletedCount int           `json:"completedCount"`
	Streak         int           `json:"streak"`
	RestStreak     *int          `json:"restStreak,omitempty"`
	Calendar       []CalendarDay `json:"calendar"`
}

// MonthSummary aggregates the entries whose date starts with month (YYYY-MM).
// Streak and rest streak are computed over all entries, not only the month.
func MonthSummary(month string, logs []LogEntry, today time.Time) Summary {
	summary := Summary{
		Month:    month,
		Streak:   Streak(logs, today),
		Calendar: []CalendarDay{},
	}

	for _, l := range logs {
		if l.Date == "" || !strings.HasPrefix(l.Date, month) {
			continue
		}
		if l.Completed {
			summary.CompletedCount++
		}
		summary.Calendar = append(summary.Calendar, CalendarDay{
			Date:      l.Date,
			SessionID: l.SessionID,
			Completed: l.Completed,
			Note:      l.Note,
		})
	}

	if rest, ok := RestStreak(logs, today); ok {
		summary.RestStreak = &rest
	}

	return summary
}

// RestStreak is the number of days since the latest completed workout on or before today.
func RestStreak(logs []LogEntry, today time.Time) (int, bool) {
	loc := today.Location()
	cursor := midnight(today)
	rest := -1
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		d, err := ParseDate(l.Date, loc)
		if err != nil {
			continue
		}
		diff := daysBetween(d, cursor)
		if diff < 0 {
			continue
		}
		if rest < 0 || diff < rest {
			rest = diff
		}
	}
	return rest, rest >= 0
}

const (
	restWarningThreshold  = 3
	expectedMonthlyVolume = 0.5
)

type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func DaysInMonth(month string, loc *time.Location) (int, error) {
	first, err := time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return first.AddDate(0, 1, -1).Day(), nil
}

// Warnings flags a month with too few workouts and a too long rest.
func Warnings(summary Summary, daysInMonth int) []Warning {
	var warnings []Warning

	expected := int(float64(daysInMonth) * expectedMonthlyVolume)
	if summary.CompletedCount < expected {
		warnings = append(warnings, Warning{
			Type: "warning",
			Message: fmt.Sprintf(
				"Bạn chỉ tập %d/%d ngày trong tháng. Nên tập ít nhất %d ngày!",
				summary.CompletedCount, daysInMonth, expected,
			),
		})
	}

	if summary.RestStreak != nil && *summary.RestStreak > restWarningThreshold {
		warnings = append(warnings, Warning{
			Type:    "error",
			Message: fmt.Sprintf("Bạn đã nghỉ %d ngày liên tiếp! Hãy quay lại tập luyện.", *summary.RestStreak),
		})
	}

	return warnings
}

// YearHeatmap counts completed workouts per date of the given year.
func YearHeatmap(year int, logs []LogEntry) map[string]int {
	prefix := fmt.Sprintf("%04d-", year)
	heatmap := make(map[string]int)
	for _, l := range logs {
		if !l.Completed || !strings.HasPrefix(l.Date, prefix) {
			continue
		}
		heatmap[l.Date]++
	}
	return heatmap
}

// LastCompleted returns the completed entry with the latest date.
// Ties keep the one that comes later in the sheet.
func LastCompleted(logs []LogEntry) (LogEntry, bool) {
	var last LogEntry
	found := false
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		if !found || l.Date >= last.Date {
			last = l
			found = true
		}
	}
	return last, found
}

// FindCompletedOn returns the completed entry already logged for date, if any.
func FindCompletedOn(logs []LogEntry, date string) (LogEntry, bool) {
	for _, l := range logs {
		if l.Completed && l.Date == date {
			return l, true
		}
	}
	return LogEntry{}, false
}
