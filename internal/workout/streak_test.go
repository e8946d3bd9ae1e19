package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = mustLoadLocation("Asia/Bangkok")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func done(date, session string) LogEntry {
	return LogEntry{Date: date, SessionID: session, Completed: true}
}

func TestStreak(t *testing.T) {
	today := time.Date(2025, 1, 10, 18, 30, 0, 0, testLoc)

	testCases := []struct {
		name     string
		entries  []LogEntry
		expected int
	}{
		{
			name:     "Empty",
			entries:  nil,
			expected: 0,
		},
		{
			name: "ThreeConsecutiveEndingToday",
			entries: []LogEntry{
				done("2025-01-08", "S1"), done("2025-01-09", "S2"), done("2025-01-10", "S3"),
			},
			expected: 3,
		},
		{
			name: "NothingToday",
			entries: []LogEntry{
				done("2025-01-08", "S1"), done("2025-01-09", "S2"),
			},
			expected: 0,
		},
		{
			name: "GapBreaksRun",
			entries: []LogEntry{
				done("2025-01-05", "S1"), done("2025-01-07", "S2"), done("2025-01-09", "S3"), done("2025-01-10", "S4"),
			},
			expected: 2,
		},
		{
			name: "DuplicateDateSkipped",
			entries: []LogEntry{
				done("2025-01-10", "S1"), done("2025-01-10", "S2"), done("2025-01-09", "S3"),
			},
			expected: 2,
		},
		{
			name: "IncompleteIgnored",
			entries: []LogEntry{
				done("2025-01-10", "S1"), {Date: "2025-01-09", SessionID: "S2", Completed: false}, done("2025-01-08", "S3"),
			},
			expected: 1,
		},
		{
			name: "FutureEntryIgnored",
			entries: []LogEntry{
				done("2025-01-12", "S1"), done("2025-01-10", "S2"), done("2025-01-09", "S3"),
			},
			expected: 2,
		},
		{
			name: "UnreadableDateSkipped",
			entries: []LogEntry{
				done("yesterday", "S1"), done("2025-01-10", "S2"),
			},
			expected: 1,
		},
		{
			name: "UnsortedInput",
			entries: []LogEntry{
				done("2025-01-09", "S2"), done("2025-01-10", "S3"), done("2025-01-08", "S1"),
			},
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Streak(tc.entries, today))
		})
	}
}

func TestStreak_AcrossMonthAndDST(t *testing.T) {
	berlin := mustLoadLocation("Europe/Berlin")
	// clocks go forward on 2025-03-30 in Berlin
	today := time.Date(2025, 3, 31, 7, 0, 0, 0, berlin)
	entries := []LogEntry{
		done("2025-03-28", "S1"), done("2025-03-29", "S2"), done("2025-03-30", "S3"), done("2025-03-31", "S4"),
	}
	assert.Equal(t, 4, Streak(entries, today))
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2025-01-02", "2025/01/02", "2025-1-2"} {
		d, err := ParseDate(raw, testLoc)
		require.NoError(t, err, raw)
		assert.True(t, time.Date(2025, 1, 2, 0, 0, 0, 0, testLoc).Equal(d), raw)
	}
	_, err := ParseDate("02.01.2025", testLoc)
	assert.Error(t, err)
}
