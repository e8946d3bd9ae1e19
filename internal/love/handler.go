package love

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/auth"
	"github.com/2beens/gymcycle/internal/middleware"
	"github.com/2beens/gymcycle/internal/telemetry/metrics"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=love_test

type loveRepo interface {
	Config(ctx context.Context) (map[string]string, error)
	RandomQuote(ctx context.Context) (*Quote, error)
	Messages(ctx context.Context) ([]Message, error)
	SendMessage(ctx context.Context, sender, content, msgType string) (*Message, error)
	Timeline(ctx context.Context) ([]TimelineEvent, error)
	AddTimelineEvent(ctx context.Context, event TimelineEvent) (*TimelineEvent, error)
	DreamList(ctx context.Context) ([]Dream, error)
	AddDream(ctx context.Context, task, imageURL string) (*Dream, error)
	ToggleDream(ctx context.Context, id string, completed bool) (bool, error)
	Mailbox(ctx context.Context) ([]Mail, error)
	SendMail(ctx context.Context, sender, title, content string) (*Mail, error)
}

type loginService interface {
	Login(ctx context.Context, passcode string, createdAt time.Time) (string, error)
}

type Handler struct {
	repo         loveRepo
	loginService loginService
}

func NewHandler(repo loveRepo, loginService loginService) *Handler {
	return &Handler{
		repo:         repo,
		loginService: loginService,
	}
}

// SetupRoutes mounts the inlove routes under /love. The unlock route is rate limited per client.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	unlockPerMin int,
) {
	loveRouter := mainRouter.PathPrefix("/love").Subrouter()
	loveRouter.HandleFunc("/config", handler.HandleConfig).Methods("GET").Name("love-config")
	loveRouter.HandleFunc("/quote", handler.HandleQuote).Methods("GET").Name("love-quote")
	loveRouter.HandleFunc("/messages", handler.HandleMessages).Methods("GET").Name("love-messages")
	loveRouter.HandleFunc("/messages", handler.HandleSendMessage).Methods("POST").Name("love-messages-new")
	loveRouter.HandleFunc("/timeline", handler.HandleTimeline).Methods("GET").Name("love-timeline")
	loveRouter.HandleFunc("/timeline", handler.HandleAddTimelineEvent).Methods("POST").Name("love-timeline-new")
	loveRouter.HandleFunc("/dreamlist", handler.HandleDreamList).Methods("GET").Name("love-dreamlist")
	loveRouter.HandleFunc("/dreamlist", handler.HandleAddDream).Methods("POST").Name("love-dreamlist-new")
	loveRouter.HandleFunc("/dreamlist/{id}", handler.HandleToggleDream).Methods("PATCH").Name("love-dreamlist-toggle")
	loveRouter.HandleFunc("/mailbox", handler.HandleMailbox).Methods("GET").Name("love-mailbox")
	loveRouter.HandleFunc("/mailbox", handler.HandleSendMail).Methods("POST").Name("love-mailbox-new")

	unlockRateLimit := middleware.RateLimit(rateLimiter, "love-unlock", unlockPerMin, metricsManager)
	loveRouter.Handle("/unlock", unlockRateLimit(http.HandlerFunc(handler.HandleUnlock))).Methods("POST").Name("love-unlock")
}

func (handler *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.config")
	defer span.End()

	config, err := handler.repo.Config(ctx)
	if err != nil {
		writeError(w, "get config", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, config)
}

func (handler *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.quote")
	defer span.End()

	quote, err := handler.repo.RandomQuote(ctx)
	if err != nil {
		writeError(w, "get quote", err)
		return
	}
	if quote == nil {
		quote = &DefaultQuote
	}
	pkg.WriteJSON(w, http.StatusOK, quote)
}

func (handler *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.messages")
	defer span.End()

	messages, err := handler.repo.Messages(ctx)
	if err != nil {
		writeError(w, "get messages", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, messages)
}

func (handler *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.send-message")
	defer span.End()

	var req Message
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "content required")
		return
	}

	msg, err := handler.repo.SendMessage(ctx, req.Sender, req.Content, req.Type)
	if err != nil {
		writeError(w, "send message", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, msg)
}

func (handler *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.timeline")
	defer span.End()

	events, err := handler.repo.Timeline(ctx)
	if err != nil {
		writeError(w, "get timeline", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, events)
}

func (handler *Handler) HandleAddTimelineEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.add-timeline-event")
	defer span.End()

	var req TimelineEvent
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Title) == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "date and title required")
		return
	}

	event, err := handler.repo.AddTimelineEvent(ctx, req)
	if err != nil {
		writeError(w, "add timeline event", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, event)
}

func (handler *Handler) HandleDreamList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.dream-list")
	defer span.End()

	dreams, err := handler.repo.DreamList(ctx)
	if err != nil {
		writeError(w, "get dream list", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, dreams)
}

func (handler *Handler) HandleAddDream(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.add-dream")
	defer span.End()

	var req struct {
		Task     string `json:"task"`
		ImageURL string `json:"image_url"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "task required")
		return
	}

	dream, err := handler.repo.AddDream(ctx, req.Task, req.ImageURL)
	if err != nil {
		writeError(w, "add dream", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, dream)
}

func (handler *Handler) HandleToggleDream(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.toggle-dream")
	defer span.End()

	id := mux.Vars(r)["id"]
	var req struct {
		IsCompleted Flag `json:"is_completed"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	found, err := handler.repo.ToggleDream(ctx, id, bool(req.IsCompleted))
	if err != nil {
		writeError(w, "toggle dream", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, map[string]bool{"success": found})
}

func (handler *Handler) HandleMailbox(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.mailbox")
	defer span.End()

	mails, err := handler.repo.Mailbox(ctx)
	if err != nil {
		writeError(w, "get mailbox", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, mails)
}

func (handler *Handler) HandleSendMail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.send-mail")
	defer span.End()

	var req struct {
		Sender  string `json:"sender"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "content required")
		return
	}

	mail, err := handler.repo.SendMail(ctx, req.Sender, req.Title, req.Content)
	if err != nil {
		writeError(w, "send mail", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, mail)
}

func (handler *Handler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.love.unlock")
	defer span.End()

	if handler.loginService == nil {
		pkg.WriteJSONError(w, http.StatusServiceUnavailable, "unlock not available")
		return
	}

	var req struct {
		Passcode string `json:"passcode"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Passcode == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "passcode required")
		return
	}

	token, err := handler.loginService.Login(ctx, req.Passcode, time.Now())
	if errors.Is(err, auth.ErrWrongPasscode) {
		log.Tracef("love unlock: wrong passcode")
		pkg.WriteJSONError(w, http.StatusUnauthorized, "wrong passcode")
		return
	}
	if err != nil {
		writeError(w, "unlock", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, op string, err error) {
	log.Errorf("love %s: %s", op, err)
	pkg.WriteJSONError(w, http.StatusInternalServerError, err.Error())
}
