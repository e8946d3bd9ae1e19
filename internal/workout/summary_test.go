package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSummary(t *testing.T) {
	today := time.Date(2025, 2, 2, 9, 0, 0, 0, testLoc)
	logs := []LogEntry{
		done("2025-01-30", "S1"),
		{Date: "2025-01-31", SessionID: "S2", Completed: false, Note: "sick"},
		done("2025-02-01", "S2"),
		done("2025-02-02", "S3"),
		{Date: "", SessionID: "S4", Completed: true},
	}

	summary := MonthSummary("2025-02", logs, today)
	assert.Equal(t, "2025-02", summary.Month)
	assert.Equal(t, 2, summary.CompletedCount)
	assert.Equal(t, 2, summary.Streak)
	require.NotNil(t, summary.RestStreak)
	assert.Equal(t, 0, *summary.RestStreak)
	assert.Equal(t, []CalendarDay{
		{Date: "2025-02-01", SessionID: "S2", Completed: true},
		{Date: "2025-02-02", SessionID: "S3", Completed: true},
	}, summary.Calendar)

	january := MonthSummary("2025-01", logs, today)
	assert.Equal(t, 1, january.CompletedCount)
	// streak is global, not per month
	assert.Equal(t, 2, january.Streak)
	require.Len(t, january.Calendar, 2)
	assert.False(t, january.Calendar[1].Completed)
	assert.Equal(t, "sick", january.Calendar[1].Note)
}

func TestMonthSummary_NoWorkouts(t *testing.T) {
	summary := MonthSummary("2025-03", nil, time.Date(2025, 3, 1, 0, 0, 0, 0, testLoc))
	assert.Equal(t, 0, summary.CompletedCount)
	assert.Equal(t, 0, summary.Streak)
	assert.Nil(t, summary.RestStreak)
	assert.NotNil(t, summary.Calendar)
	assert.Empty(t, summary.Calendar)
}

func TestRestStreak(t *testing.T) {
	today := time.Date(2025, 2, 10, 12, 0, 0, 0, testLoc)

	rest, ok := RestStreak([]LogEntry{done("2025-02-05", "S1"), done("2025-02-03", "S4")}, today)
	require.True(t, ok)
	assert.Equal(t, 5, rest)

	// a future entry does not end the rest period
	rest, ok = RestStreak([]LogEntry{done("2025-02-12", "S1"), done("2025-02-09", "S4")}, today)
	require.True(t, ok)
	assert.Equal(t, 1, rest)

	_, ok = RestStreak([]LogEntry{{Date: "2025-02-09", Completed: false}}, today)
	assert.False(t, ok)
}

func TestWarnings(t *testing.T) {
	days, err := DaysInMonth("2025-02", testLoc)
	require.NoError(t, err)
	assert.Equal(t, 28, days)

	days, err = DaysInMonth("2024-02", testLoc)
	require.NoError(t, err)
	assert.Equal(t, 29, days)

	_, err = DaysInMonth("2025-13", testLoc)
	assert.Error(t, err)

	rest := 5
	warnings := Warnings(Summary{CompletedCount: 10, RestStreak: &rest}, 31)
	require.Len(t, warnings, 2)
	assert.Equal(t, "warning", warnings[0].Type)
	assert.Equal(t, "Bạn chỉ tập 10/31 ngày trong tháng. Nên tập ít nhất 15 ngày!", warnings[0].Message)
	assert.Equal(t, "error", warnings[1].Type)
	assert.Equal(t, "Bạn đã nghỉ 5 ngày liên tiếp! Hãy quay lại tập luyện.", warnings[1].Message)

	rest = 3
	assert.Empty(t, Warnings(Summary{CompletedCount: 15, RestStreak: &rest}, 31))
	assert.Empty(t, Warnings(Summary{CompletedCount: 14}, 28))
}

func TestYearHeatmap(t *testing.T) {
	logs := []LogEntry{
		done("2024-12-31", "S1"),
		done("2025-01-01", "S2"),
		done("2025-01-01", "S3"),
		{Date: "2025-01-02", SessionID: "S4"},
		done("2025-06-15", "S4"),
	}
	assert.Equal(t, map[string]int{
		"2025-01-01": 2,
		"2025-06-15": 1,
	}, YearHeatmap(2025, logs))
	assert.Empty(t, YearHeatmap(2023, logs))
}

func TestLastCompletedAndFind(t *testing.T) {
	logs := []LogEntry{
		done("2025-01-03", "S3"),
		done("2025-01-01", "S1"),
		{Date: "2025-01-04", SessionID: "S4"},
	}
	last, ok := LastCompleted(logs)
	require.True(t, ok)
	assert.Equal(t, "S3", last.SessionID)

	_, ok = LastCompleted(nil)
	assert.False(t, ok)

	existing, ok := FindCompletedOn(logs, "2025-01-01")
	require.True(t, ok)
	assert.Equal(t, "S1", existing.SessionID)

	_, ok = FindCompletedOn(logs, "2025-01-04")
	assert.False(t, ok)
}

func TestParseReps(t *testing.T) {
	r := ParseReps("12")
	assert.Equal(t, 12, r.Min)
	assert.False(t, r.IsRange())

	r = ParseReps("8-12")
	assert.Equal(t, 8, r.Min)
	assert.Equal(t, 12, r.Max)
	assert.True(t, r.IsRange())

	r = ParseReps("10–15")
	assert.Equal(t, 15, r.Max)

	r = ParseReps("60s")
	assert.Equal(t, "60s", r.Raw)
	assert.Equal(t, 0, r.Max)

	b, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"60s"`, string(b))

	var fromNumber Reps
	require.NoError(t, fromNumber.UnmarshalJSON([]byte(`10`)))
	assert.Equal(t, "10", fromNumber.Raw)
	assert.Equal(t, 10, fromNumber.Min)
}
