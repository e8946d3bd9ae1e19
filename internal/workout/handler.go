package workout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type workoutService interface {
	DefaultMode() Mode
	TodayPlan(ctx context.Context, mode Mode) (*TodayPlan, error)
	MonthSummary(ctx context.Context, month string) (*Summary, error)
	LogWorkout(ctx context.Context, entry LogEntry) error
	QuickCheckin(ctx context.Context, mode Mode, note string) (*CheckinResult, error)
	LogExerciseCheck(ctx context.Context, check ExerciseCheck) error
	Sessions(ctx context.Context) ([]Session, error)
	Exercises(ctx context.Context, sessionID string) ([]Exercise, error)
	LogBodyweight(ctx context.Context, entry BodyweightEntry) (*BodyweightEntry, error)
	BodyweightHistory(ctx context.Context) ([]BodyweightEntry, error)
	YearHeatmap(ctx context.Context, year string) (map[string]int, error)
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

type okResponse struct {
	OK bool `json:"ok"`
}

type duplicateResponse struct {
	Error           string `json:"error"`
	ExistingSession string `json:"existingSession"`
	Date            string `json:"date,omitempty"`
}

type logRequest struct {
	Date        string          `json:"date"`
	SessionID   string          `json:"session_id"`
	Completed   bool            `json:"completed"`
	DurationMin json.RawMessage `json:"duration_min"`
	Note        string          `json:"note"`
}

type quickCheckinRequest struct {
	Mode json.RawMessage `json:"mode"`
	Note string          `json:"note"`
}

type quickCheckinResponse struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Session *Session `json:"session"`
	Date    string   `json:"date"`
}

type bodyweightResponse struct {
	OK    bool             `json:"ok"`
	Entry *BodyweightEntry `json:"entry"`
}

func (h *Handler) HandleTodayPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.today-plan")
	defer span.End()

	mode, err := ParseMode(r.URL.Query().Get("mode"), h.service.DefaultMode())
	if err != nil {
		h.writeError(w, "today plan", err)
		return
	}

	plan, err := h.service.TodayPlan(ctx, mode)
	if err != nil {
		h.writeError(w, "today plan", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, plan)
}

func (h *Handler) HandleMonthSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.month-summary")
	defer span.End()

	summary, err := h.service.MonthSummary(ctx, r.URL.Query().Get("month"))
	if err != nil {
		h.writeError(w, "month summary", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.log")
	defer span.End()

	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("log workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	duration, err := optionalInt(req.DurationMin)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "duration_min must be a number")
		return
	}

	err = h.service.LogWorkout(ctx, LogEntry{
		Date:        req.Date,
		SessionID:   req.SessionID,
		Completed:   req.Completed,
		DurationMin: duration,
		Note:        req.Note,
	})

	var dupErr *DuplicateWorkoutError
	if errors.As(err, &dupErr) {
		pkg.WriteJSON(w, http.StatusBadRequest, duplicateResponse{
			Error:           dupErr.Error(),
			ExistingSession: dupErr.ExistingSession,
		})
		return
	}
	if err != nil {
		h.writeError(w, "log workout", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) HandleQuickCheckin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.quick-checkin")
	defer span.End()

	var req quickCheckinRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		log.Debugf("quick checkin, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode, err := ParseMode(rawString(req.Mode), h.service.DefaultMode())
	if err != nil {
		h.writeError(w, "quick checkin", err)
		return
	}

	result, err := h.service.QuickCheckin(ctx, mode, req.Note)

	var dupErr *DuplicateWorkoutError
	if errors.As(err, &dupErr) {
		pkg.WriteJSON(w, http.StatusBadRequest, duplicateResponse{
			Error:           dupErr.Error(),
			ExistingSession: dupErr.ExistingSession,
			Date:            dupErr.Date,
		})
		return
	}
	if err != nil {
		h.writeError(w, "quick checkin", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, quickCheckinResponse{
		OK:      true,
		Message: "Check-in thành công!",
		Session: result.Session,
		Date:    result.Date,
	})
}

func (h *Handler) HandleExerciseCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercise-check")
	defer span.End()

	var check ExerciseCheck
	if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
		log.Debugf("exercise check, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.LogExerciseCheck(ctx, check); err != nil {
		h.writeError(w, "exercise check", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.sessions")
	defer span.End()

	sessions, err := h.service.Sessions(ctx)
	if err != nil {
		h.writeError(w, "list sessions", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, sessions)
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercises")
	defer span.End()

	exercises, err := h.service.Exercises(ctx, r.URL.Query().Get("session_id"))
	if err != nil {
		h.writeError(w, "list exercises", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, exercises)
}

func (h *Handler) HandleBodyweight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.bodyweight")
	defer span.End()

	var entry BodyweightEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Debugf("bodyweight, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.LogBodyweight(ctx, entry)
	if err != nil {
		h.writeError(w, "log bodyweight", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, bodyweightResponse{OK: true, Entry: saved})
}

func (h *Handler) HandleBodyweightHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.bodyweight-history")
	defer span.End()

	entries, err := h.service.BodyweightHistory(ctx)
	if err != nil {
		h.writeError(w, "bodyweight history", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) HandleYearHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.year-heatmap")
	defer span.End()

	heatmap, err := h.service.YearHeatmap(ctx, r.URL.Query().Get("year"))
	if err != nil {
		h.writeError(w, "year heatmap", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, heatmap)
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, ErrInvalidMode), errors.Is(err, ErrInvalidMonth), errors.Is(err, ErrInvalidYear):
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrCheckinInProgress):
		pkg.WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeOptionalBody accepts an empty body as an empty request.
func decodeOptionalBody(r *http.Request, dest any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dest)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// rawString turns a json number or string into its plain text.
func rawString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func optionalInt(raw json.RawMessage) (*int, error) {
	s := strings.TrimSpace(rawString(raw))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
