package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/gymcycle/internal/spreadsheet"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

const (
	sessionsCacheKey  = "gymcycle::sessions"
	exercisesCacheKey = "gymcycle::exercises"
)

// Repo reads and appends the fitness sheets. Sessions and exercises are
// reference data and can be cached, log sheets are always read fresh.
type Repo struct {
	store    spreadsheet.Store
	loc      *time.Location
	refCache *freecache.Cache
	cacheTTL time.Duration
}

// NewRepo creates a repo, refCache may be nil to disable caching.
func NewRepo(store spreadsheet.Store, loc *time.Location, refCache *freecache.Cache, cacheTTL time.Duration) *Repo {
	if refCache != nil && cacheTTL <= 0 {
		refCache = nil
	}
	return &Repo{
		store:    store,
		loc:      loc,
		refCache: refCache,
		cacheTTL: cacheTTL,
	}
}

func (r *Repo) readTable(ctx context.Context, schema spreadsheet.Schema) (*spreadsheet.Table, error) {
	raw, err := r.store.Get(ctx, schema.ReadRange())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", schema.Sheet, err)
	}
	table, err := spreadsheet.ParseTable(schema, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", schema.Sheet, err)
	}
	return table, nil
}

func (r *Repo) Sessions(ctx context.Context) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.sessions")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var sessions []Session
	if r.cacheGet(sessionsCacheKey, &sessions) {
		return sessions, nil
	}

	table, err := r.readTable(ctx, SessionsSchema)
	if err != nil {
		return nil, err
	}

	sessions = make([]Session, 0, len(table.Rows))
	for _, row := range table.Rows {
		priority, _, pErr := row.Int("priority")
		if pErr != nil {
			err = multierr.Append(err, pErr)
			continue
		}
		sessions = append(sessions, Session{
			SessionID:    row.String("session_id"),
			SessionName:  row.String("session_name"),
			MuscleGroups: splitList(row.String("muscle_groups")),
			Priority:     priority,
		})
	}
	if err != nil {
		return nil, err
	}

	r.cacheSet(sessionsCacheKey, sessions)
	return sessions, nil
}

// Session returns the session with the given id, or ErrSessionNotFound.
func (r *Repo) Session(ctx context.Context, sessionID string) (*Session, error) {
	sessions, err := r.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			return &sessions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
}

// Exercises returns all exercises, or those of one session sorted by order.
func (r *Repo) Exercises(ctx context.Context, sessionID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.exercises")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	all, err := r.allExercises(ctx)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return all, nil
	}

	filtered := make([]Exercise, 0)
	for _, e := range all {
		if e.SessionID == sessionID {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Order < filtered[j].Order
	})
	return filtered, nil
}

func (r *Repo) allExercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	if r.cacheGet(exercisesCacheKey, &exercises) {
		return exercises, nil
	}

	table, err := r.readTable(ctx, ExercisesSchema)
	if err != nil {
		return nil, err
	}

	exercises = make([]Exercise, 0, len(table.Rows))
	for _, row := range table.Rows {
		order, _, oErr := row.Int("order")
		sets, _, sErr := row.Int("sets")
		restSec, _, rErr := row.Int("rest_sec")
		if rowErr := multierr.Combine(oErr, sErr, rErr); rowErr != nil {
			err = multierr.Append(err, rowErr)
			continue
		}
		exercises = append(exercises, Exercise{
			SessionID:  row.String("session_id"),
			Order:      order,
			ExerciseID: row.String("exercise_id"),
			Name:       row.String("name"),
			Sets:       sets,
			Reps:       ParseReps(row.String("reps")),
			RestSec:    restSec,
			VideoURL:   row.String("video_url"),
		})
	}
	if err != nil {
		return nil, err
	}

	r.cacheSet(exercisesCacheKey, exercises)
	return exercises, nil
}

func (r *Repo) Logs(ctx context.Context) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.logs")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, LogSchema)
	if err != nil {
		return nil, err
	}

	logs := make([]LogEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		entry := LogEntry{
			Date:      r.normalizeDate(row.String("date")),
			SessionID: row.String("session_id"),
			Completed: row.Bool("completed"),
			Note:      row.String("note"),
		}
		duration, ok, dErr := row.Int("duration_min")
		if dErr != nil {
			err = multierr.Append(err, dErr)
			continue
		}
		if ok {
			entry.DurationMin = &duration
		}
		logs = append(logs, entry)
	}
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Repo) AppendLog(ctx context.Context, entry LogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.append-log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	duration := ""
	if entry.DurationMin != nil {
		duration = fmt.Sprint(*entry.DurationMin)
	}
	row := LogSchema.Values(map[string]string{
		"date":         entry.Date,
		"session_id":   entry.SessionID,
		"completed":    boolCell(entry.Completed),
		"duration_min": duration,
		"note":         entry.Note,
	})
	if err := r.store.Append(ctx, LogSchema.AppendRange(), row); err != nil {
		return fmt.Errorf("append %s: %w", LogSchema.Sheet, err)
	}
	return nil
}

func (r *Repo) AppendExerciseCheck(ctx context.Context, check ExerciseCheck) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.append-exercise-check")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	values := map[string]string{
		"date":        check.Date,
		"session_id":  check.SessionID,
		"exercise_id": check.ExerciseID,
		"checked":     boolCell(check.Checked),
	}
	if check.Weight != nil {
		values["weight"] = formatFloat(*check.Weight)
	}
	if check.Reps != nil {
		values["reps"] = fmt.Sprint(*check.Reps)
	}
	if err := r.store.Append(ctx, ExerciseCheckSchema.AppendRange(), ExerciseCheckSchema.Values(values)); err != nil {
		return fmt.Errorf("append %s: %w", ExerciseCheckSchema.Sheet, err)
	}
	return nil
}

func (r *Repo) Bodyweights(ctx context.Context) (_ []BodyweightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.bodyweights")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, BodyweightSchema)
	if err != nil {
		return nil, err
	}

	entries := make([]BodyweightEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		weight, ok, wErr := row.Float("weight")
		if wErr != nil {
			err = multierr.Append(err, wErr)
			continue
		}
		if !ok {
			continue
		}
		entries = append(entries, BodyweightEntry{
			Date:   r.normalizeDate(row.String("date")),
			Weight: weight,
			Note:   row.String("note"),
		})
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repo) AppendBodyweight(ctx context.Context, entry BodyweightEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.append-bodyweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := BodyweightSchema.Values(map[string]string{
		"date":   entry.Date,
		"weight": formatFloat(entry.Weight),
		"note":   entry.Note,
	})
	if err := r.store.Append(ctx, BodyweightSchema.AppendRange(), row); err != nil {
		return fmt.Errorf("append %s: %w", BodyweightSchema.Sheet, err)
	}
	return nil
}

// InvalidateReferenceCache drops cached sessions and exercises, e.g. after a reseed.
func (r *Repo) InvalidateReferenceCache() {
	if r.refCache == nil {
		return
	}
	r.refCache.Del([]byte(sessionsCacheKey))
	r.refCache.Del([]byte(exercisesCacheKey))
}

func (r *Repo) cacheGet(key string, dest any) bool {
	if r.refCache == nil {
		return false
	}
	cached, err := r.refCache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, dest); err != nil {
		log.Warnf("reference cache, unmarshal %s: %s", key, err)
		return false
	}
	log.Tracef("reference cache hit: %s", key)
	return true
}

func (r *Repo) cacheSet(key string, value any) {
	if r.refCache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Warnf("reference cache, marshal %s: %s", key, err)
		return
	}
	if err := r.refCache.Set([]byte(key), data, int(r.cacheTTL.Seconds())); err != nil {
		log.Warnf("reference cache, set %s: %s", key, err)
	}
}

func (r *Repo) normalizeDate(raw string) string {
	d, err := ParseDate(raw, r.loc)
	if err != nil {
		return raw
	}
	return d.Format(DateLayout)
}

func splitList(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func formatFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
