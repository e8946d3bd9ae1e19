package workout

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/telemetry/metrics"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workout_test

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrInvalidYear     = errors.New("invalid year")
)

const duplicateWorkoutMessage = "Bạn đã tập rồi hôm nay! Mỗi ngày chỉ được tập 1 buổi."

var todayTips = []string{
	"Khởi động 5–8 phút (vai/lưng trên/khớp).",
	"Uống nước trước tập 300–500ml.",
	"Giữ form trước, tạ sau.",
}

// DuplicateWorkoutError is returned when the date already has a completed workout.
type DuplicateWorkoutError struct {
	Date            string
	ExistingSession string
}

func (e *DuplicateWorkoutError) Error() string {
	return duplicateWorkoutMessage
}

// ValidationError carries a message meant for the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingField
}

type workoutRepo interface {
	Sessions(ctx context.Context) ([]Session, error)
	Session(ctx context.Context, sessionID string) (*Session, error)
	Exercises(ctx context.Context, sessionID string) ([]Exercise, error)
	Logs(ctx context.Context) ([]LogEntry, error)
	AppendLog(ctx context.Context, entry LogEntry) error
	AppendExerciseCheck(ctx context.Context, check ExerciseCheck) error
	Bodyweights(ctx context.Context) ([]BodyweightEntry, error)
	AppendBodyweight(ctx context.Context, entry BodyweightEntry) error
}

type checkinLocker interface {
	Acquire(ctx context.Context, date string) (func(), error)
}

type eventNotifier interface {
	Notify(event notify.Event)
}

type TodayPlan struct {
	Date      string     `json:"date"`
	Mode      Mode       `json:"mode"`
	Session   *Session   `json:"session"`
	Exercises []Exercise `json:"exercises"`
	Tips      []string   `json:"tips"`
}

type CheckinResult struct {
	Session *Session `json:"session"`
	Date    string   `json:"date"`
}

type NewServiceParams struct {
	Repo        workoutRepo
	Lock        checkinLocker
	Notifier    eventNotifier
	Metrics     *metrics.Manager
	Location    *time.Location
	DefaultMode Mode
	// Now defaults to time.Now
	Now func() time.Time
}

type Service struct {
	repo        workoutRepo
	lock        checkinLocker
	notifier    eventNotifier
	metrics     *metrics.Manager
	loc         *time.Location
	defaultMode Mode
	now         func() time.Time
}

func NewService(params NewServiceParams) *Service {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	defaultMode := params.DefaultMode
	if !defaultMode.Valid() {
		defaultMode = Mode4
	}
	return &Service{
		repo:        params.Repo,
		lock:        params.Lock,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		loc:         loc,
		defaultMode: defaultMode,
		now:         now,
	}
}

func (s *Service) DefaultMode() Mode {
	return s.defaultMode
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

// Today returns today's date in the service location.
func (s *Service) Today() string {
	return s.today().Format(DateLayout)
}

func (s *Service) TodayPlan(ctx context.Context, mode Mode) (_ *TodayPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.today-plan")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return nil, err
	}

	lastSessionID := ""
	if last, ok := LastCompleted(logs); ok {
		lastSessionID = last.SessionID
	}
	nextID := NextSession(lastSessionID, mode)

	session, err := s.repo.Session(ctx, nextID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.repo.Exercises(ctx, nextID)
	if err != nil {
		return nil, err
	}

	return &TodayPlan{
		Date:      s.Today(),
		Mode:      mode,
		Session:   session,
		Exercises: exercises,
		Tips:      append([]string(nil), todayTips...),
	}, nil
}

func (s *Service) MonthSummary(ctx context.Context, month string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.month-summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if month == "" {
		month = s.today().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return nil, err
	}

	summary := MonthSummary(month, logs, s.today())
	return &summary, nil
}

// LogWorkout appends a log entry unless the date already has a completed workout.
func (s *Service) LogWorkout(ctx context.Context, entry LogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entry.Date = strings.TrimSpace(entry.Date)
	entry.SessionID = strings.TrimSpace(entry.SessionID)
	if entry.Date == "" || entry.SessionID == "" {
		return &ValidationError{Message: "date and session_id required"}
	}
	if d, err := ParseDate(entry.Date, s.loc); err == nil {
		entry.Date = d.Format(DateLayout)
	}

	release, err := s.acquireLock(ctx, entry.Date)
	if err != nil {
		return err
	}
	defer release()

	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return err
	}

	if existing, found := FindCompletedOn(logs, entry.Date); found {
		s.countDuplicate()
		s.notify(notify.Event{
			Type:        notify.EventDuplicateWorkout,
			SessionName: s.sessionName(ctx, existing.SessionID),
			Date:        entry.Date,
		})
		return &DuplicateWorkoutError{Date: entry.Date, ExistingSession: existing.SessionID}
	}

	if err := s.repo.AppendLog(ctx, entry); err != nil {
		return err
	}
	s.countCheckin("log", entry.SessionID)

	s.notify(notify.Event{
		Type:        notify.EventWorkoutLogged,
		SessionName: s.sessionName(ctx, entry.SessionID),
		Date:        entry.Date,
	})
	return nil
}

// QuickCheckin logs today's next session in the rotation as completed.
func (s *Service) QuickCheckin(ctx context.Context, mode Mode, note string) (_ *CheckinResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.quick-checkin")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	today := s.Today()
	release, err := s.acquireLock(ctx, today)
	if err != nil {
		return nil, err
	}
	defer release()

	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return nil, err
	}

	if existing, found := FindCompletedOn(logs, today); found {
		s.countDuplicate()
		return nil, &DuplicateWorkoutError{Date: today, ExistingSession: existing.SessionID}
	}

	lastSessionID := ""
	if last, ok := LastCompleted(logs); ok {
		lastSessionID = last.SessionID
	}
	nextID := NextSession(lastSessionID, mode)

	if err := s.repo.AppendLog(ctx, LogEntry{
		Date:      today,
		SessionID: nextID,
		Completed: true,
		Note:      note,
	}); err != nil {
		return nil, err
	}
	s.countCheckin("quick", nextID)

	session, err := s.repo.Session(ctx, nextID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	return &CheckinResult{
		Session: session,
		Date:    today,
	}, nil
}

func (s *Service) LogExerciseCheck(ctx context.Context, check ExerciseCheck) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.exercise-check")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if check.Date == "" || check.SessionID == "" || check.ExerciseID == "" {
		return &ValidationError{Message: "date, session_id, and exercise_id required"}
	}
	return s.repo.AppendExerciseCheck(ctx, check)
}

func (s *Service) Sessions(ctx context.Context) ([]Session, error) {
	return s.repo.Sessions(ctx)
}

func (s *Service) Exercises(ctx context.Context, sessionID string) ([]Exercise, error) {
	return s.repo.Exercises(ctx, sessionID)
}

func (s *Service) LogBodyweight(ctx context.Context, entry BodyweightEntry) (_ *BodyweightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.bodyweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if entry.Weight <= 0 {
		return nil, &ValidationError{Message: "weight required"}
	}
	if entry.Date == "" {
		entry.Date = s.Today()
	}
	if err := s.repo.AppendBodyweight(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// BodyweightHistory returns all entries, oldest first.
func (s *Service) BodyweightHistory(ctx context.Context) ([]BodyweightEntry, error) {
	entries, err := s.repo.Bodyweights(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

func (s *Service) YearHeatmap(ctx context.Context, yearRaw string) (_ map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.year-heatmap")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	year := s.today().Year()
	if yearRaw != "" {
		year, err = strconv.Atoi(yearRaw)
		if err != nil || year < 1970 || year > 9999 {
			return nil, ErrInvalidYear
		}
	}

	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return nil, err
	}
	return YearHeatmap(year, logs), nil
}

// Stats is what the bot shows for /stats.
type Stats struct {
	Summary     *Summary
	DaysInMonth int
	Warnings    []Warning
}

func (s *Service) MonthStats(ctx context.Context) (*Stats, error) {
	summary, err := s.MonthSummary(ctx, "")
	if err != nil {
		return nil, err
	}
	days, err := DaysInMonth(summary.Month, s.loc)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Summary:     summary,
		DaysInMonth: days,
		Warnings:    Warnings(*summary, days),
	}, nil
}

func (s *Service) acquireLock(ctx context.Context, date string) (func(), error) {
	noop := func() {}
	if s.lock == nil {
		return noop, nil
	}

	release, err := s.lock.Acquire(ctx, date)
	if errors.Is(err, ErrCheckinInProgress) {
		if s.metrics != nil {
			s.metrics.CounterCheckinLockBusy.Inc()
		}
		return nil, err
	}
	if err != nil {
		log.Warnf("check-in lock unavailable, continuing without it: %s", err)
		return noop, nil
	}
	return release, nil
}

func (s *Service) sessionName(ctx context.Context, sessionID string) string {
	session, err := s.repo.Session(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Debugf("lookup session %s name: %s", sessionID, err)
		}
		return sessionID
	}
	if session.SessionName == "" {
		return sessionID
	}
	return session.SessionName
}

func (s *Service) notify(event notify.Event) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(event)
}

func (s *Service) countCheckin(source, sessionID string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterCheckins.With(prometheus.Labels{
		"source":     source,
		"session_id": sessionID,
	}).Inc()
}

func (s *Service) countDuplicate() {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterDuplicateCheckins.Inc()
}
