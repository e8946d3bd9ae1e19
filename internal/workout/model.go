package workout

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/2beens/gymcycle/internal/spreadsheet"
)

const DateLayout = "2006-01-02"

type Session struct {
	SessionID    string   `json:"session_id"`
	SessionName  string   `json:"session_name"`
	MuscleGroups []string `json:"muscle_groups"`
	Priority     int      `json:"priority"`
}

type Exercise struct {
	SessionID  string `json:"session_id"`
	Order      int    `json:"order"`
	ExerciseID string `json:"exercise_id"`
	Name       string `json:"name"`
	Sets       int    `json:"sets"`
	Reps       Reps   `json:"reps"`
	RestSec    int    `json:"rest_sec"`
	VideoURL   string `json:"video_url"`
}

// Reps is a fixed count ("12"), a range ("8-12") or free text ("60s").
type Reps struct {
	Raw string
	Min int
	Max int
}

func ParseReps(raw string) Reps {
	raw = strings.TrimSpace(raw)
	r := Reps{Raw: raw}
	if n, err := strconv.Atoi(raw); err == nil {
		r.Min, r.Max = n, n
		return r
	}
	low, high, found := strings.Cut(raw, "-")
	if !found {
		// en dash shows up in hand-edited sheets
		low, high, found = strings.Cut(raw, "–")
	}
	if found {
		lo, errLo := strconv.Atoi(strings.TrimSpace(low))
		hi, errHi := strconv.Atoi(strings.TrimSpace(high))
		if errLo == nil && errHi == nil && lo <= hi {
			r.Min, r.Max = lo, hi
		}
	}
	return r
}

func (r Reps) IsRange() bool {
	return r.Min != r.Max
}

func (r Reps) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// plain json number
		var n int
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return err
		}
		raw = strconv.Itoa(n)
	}
	*r = ParseReps(raw)
	return nil
}

type LogEntry struct {
	Date        string `json:"date"`
	SessionID   string `json:"session_id"`
	Completed   bool   `json:"completed"`
	DurationMin *int   `json:"duration_min,omitempty"`
	Note        string `json:"note"`
}

type ExerciseCheck struct {
	Date       string   `json:"date"`
	SessionID  string   `json:"session_id"`
	ExerciseID string   `json:"exercise_id"`
	Checked    bool     `json:"checked"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
}

type BodyweightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

var (
	SessionsSchema = spreadsheet.Schema{
		Sheet: "Workout_Sessions",
		Columns: []spreadsheet.Column{
			{Name: "session_id", Required: true},
			{Name: "session_name", Required: true},
			{Name: "muscle_groups"},
			{Name: "priority"},
		},
		SkipIfEmpty: "session_id",
		MaxRows:     99,
	}
	ExercisesSchema = spreadsheet.Schema{
		Sheet: "Exercises",
		Columns: []spreadsheet.Column{
			{Name: "session_id", Required: true},
			{Name: "order"},
			{Name: "exercise_id", Required: true},
			{Name: "name", Required: true},
			{Name: "sets"},
			{Name: "reps"},
			{Name: "rest_sec"},
			{Name: "video_url"},
		},
		SkipIfEmpty: "exercise_id",
	}
	LogSchema = spreadsheet.Schema{
		Sheet: "Workout_Log",
		Columns: []spreadsheet.Column{
			{Name: "date", Required: true},
			{Name: "session_id", Required: true},
			{Name: "completed", Required: true},
			{Name: "duration_min"},
			{Name: "note"},
		},
		SkipIfEmpty: "date",
	}
	ExerciseCheckSchema = spreadsheet.Schema{
		Sheet: "Exercise_Check",
		Columns: []spreadsheet.Column{
			{Name: "date", Required: true},
			{Name: "session_id", Required: true},
			{Name: "exercise_id", Required: true},
			{Name: "checked", Required: true},
			{Name: "weight"},
			{Name: "reps"},
		},
		SkipIfEmpty: "date",
	}
	BodyweightSchema = spreadsheet.Schema{
		Sheet: "Bodyweight_Log",
		Columns: []spreadsheet.Column{
			{Name: "date", Required: true},
			{Name: "weight", Required: true},
			{Name: "note"},
		},
		SkipIfEmpty: "date",
	}
)

func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
