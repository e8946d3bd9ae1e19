package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/telemetry/metrics"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=bot_mocks_test.go -package=bot_test

const (
	DefaultPollTimeoutSec = 30
	DefaultRetryDelay     = 5 * time.Second
)

type telegramClient interface {
	GetUpdates(ctx context.Context, offset int64, timeoutSec int) ([]notify.Update, error)
	SendMessage(ctx context.Context, params notify.SendMessageParams) error
	SetMyCommands(ctx context.Context, commands []notify.BotCommand) error
}

type gymcycleAPI interface {
	TodayPlan(ctx context.Context, mode int) (*workout.TodayPlan, error)
	QuickCheckin(ctx context.Context, mode int) (*CheckinReply, error)
	MonthSummary(ctx context.Context, month string) (*workout.Summary, error)
	LogBodyweight(ctx context.Context, date string, weight float64) error
}

type Bot struct {
	telegram       telegramClient
	api            gymcycleAPI
	mode           int
	location       *time.Location
	metricsManager *metrics.Manager
	pollTimeoutSec int
	retryDelay     time.Duration
	now            func() time.Time
}

type NewBotParams struct {
	Telegram       telegramClient
	API            gymcycleAPI
	Mode           int
	Location       *time.Location
	MetricsManager *metrics.Manager
	PollTimeoutSec int
	RetryDelay     time.Duration
	Now            func() time.Time
}

func NewBot(params NewBotParams) *Bot {
	b := &Bot{
		telegram:       params.Telegram,
		api:            params.API,
		mode:           params.Mode,
		location:       params.Location,
		metricsManager: params.MetricsManager,
		pollTimeoutSec: params.PollTimeoutSec,
		retryDelay:     params.RetryDelay,
		now:            params.Now,
	}
	if b.mode == 0 {
		b.mode = int(workout.Mode4)
	}
	if b.location == nil {
		b.location = time.UTC
	}
	if b.pollTimeoutSec <= 0 {
		b.pollTimeoutSec = DefaultPollTimeoutSec
	}
	if b.retryDelay <= 0 {
		b.retryDelay = DefaultRetryDelay
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

// Run registers the command menu and long-polls for updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.telegram.SetMyCommands(ctx, botCommands); err != nil {
		log.Errorf("bot: set my commands: %s", err)
	} else {
		log.Debugf("bot: %d commands registered", len(botCommands))
	}

	var offset int64
	for {
		if ctx.Err() != nil {
			return nil
		}

		updates, err := b.telegram.GetUpdates(ctx, offset, b.pollTimeoutSec)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			log.Warnf("bot: get updates: %s, retrying in %s", err, b.retryDelay)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(b.retryDelay):
			}
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate replies to a single text message. Non text updates are ignored.
func (b *Bot) HandleUpdate(ctx context.Context, update notify.Update) {
	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	command, args := parseCommand(update.Message.Text)

	ctx, span := tracing.GlobalBotTracer.Start(ctx, "bot.update."+command)
	defer span.End()
	span.SetAttributes(attribute.String("chat.id", chatID))

	log.Debugf("bot: [%s] %s", chatID, update.Message.Text)
	b.countUpdate(command)

	var reply string
	switch command {
	case "start":
		reply = startText
	case "help", "menu":
		reply = helpText
	case "today":
		reply = b.today(ctx)
	case "checkin":
		reply = b.checkin(ctx)
	case "stats":
		reply = b.stats(ctx)
	case "weigh":
		reply = b.weigh(ctx, args)
	case "weigh-hint":
		reply = weighHintText
	default:
		reply = unknownText
	}

	err := b.telegram.SendMessage(ctx, notify.SendMessageParams{
		ChatID:                chatID,
		Text:                  reply,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
		ReplyMarkup:           mainKeyboard,
	})
	if err != nil {
		span.RecordError(err)
		log.Errorf("bot: send reply [%s] to %s: %s", command, chatID, err)
	}
}

func (b *Bot) today(ctx context.Context) string {
	plan, err := b.api.TodayPlan(ctx, b.mode)
	if err != nil {
		log.Errorf("bot: today plan: %s", err)
		return "❌ Lỗi server: " + err.Error()
	}
	return TodayPlanText(plan)
}

func (b *Bot) checkin(ctx context.Context) string {
	reply, err := b.api.QuickCheckin(ctx, b.mode)
	if err != nil {
		log.Errorf("bot: quick checkin: %s", err)
		return "❌ Lỗi check-in: " + err.Error()
	}
	return checkinText(reply)
}

func (b *Bot) stats(ctx context.Context) string {
	month := b.now().In(b.location).Format("2006-01")
	summary, err := b.api.MonthSummary(ctx, month)
	if err != nil {
		log.Errorf("bot: month summary: %s", err)
		return "❌ Lỗi lấy thống kê: " + err.Error()
	}
	if summary.Month == "" {
		summary.Month = month
	}

	days, err := workout.DaysInMonth(month, b.location)
	if err != nil {
		return "❌ Lỗi lấy thống kê: " + err.Error()
	}
	return statsText(summary, days)
}

func (b *Bot) weigh(ctx context.Context, args string) string {
	if args == "" {
		return weighHintText
	}
	weight, err := strconv.ParseFloat(strings.Replace(args, ",", ".", 1), 64)
	if err != nil || weight <= 0 {
		return "❌ Cân nặng không hợp lệ: " + args + "\n\n" + weighHintText
	}

	date := b.now().In(b.location).Format(workout.DateLayout)
	if err := b.api.LogBodyweight(ctx, date, weight); err != nil {
		log.Errorf("bot: log bodyweight: %s", err)
		return "❌ Lỗi: " + err.Error()
	}
	return "⚖️ Đã lưu cân nặng: *" + strconv.FormatFloat(weight, 'f', -1, 64) + "kg*"
}

func (b *Bot) countUpdate(command string) {
	if b.metricsManager == nil {
		return
	}
	b.metricsManager.CounterBotUpdates.With(prometheus.Labels{"command": command}).Inc()
}

// parseCommand maps a message to a command name and its arguments.
// The leading slash is optional, "@botname" suffixes and case are ignored,
// keyboard button texts map to their commands.
func parseCommand(text string) (string, string) {
	text = strings.TrimSpace(text)

	switch {
	case strings.Contains(text, "Hôm nay tập gì"):
		return "today", ""
	case strings.Contains(text, "Check-in"):
		return "checkin", ""
	case strings.Contains(text, "Thống kê"):
		return "stats", ""
	case strings.Contains(text, "Cân nặng"):
		return "weigh-hint", ""
	}

	text = strings.TrimPrefix(text, "/")
	name, args, _ := strings.Cut(text, " ")
	name, _, _ = strings.Cut(name, "@")
	name = strings.ToLower(name)

	switch name {
	case "start", "today", "checkin", "stats", "help", "menu", "weigh":
		return name, strings.TrimSpace(args)
	default:
		return "unknown", ""
	}
}
