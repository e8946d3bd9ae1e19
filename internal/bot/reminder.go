package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
	"github.com/2beens/gymcycle/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=reminder_mocks_test.go -package=bot_test

const reminderTimeout = 30 * time.Second

type reminderNotifier interface {
	NotifyNow(ctx context.Context, event notify.Event) error
}

type planFetcher interface {
	TodayPlan(ctx context.Context, mode int) (*workout.TodayPlan, error)
}

// Reminder pushes the today plan to the configured chat on a cron schedule.
type Reminder struct {
	cron     *cron.Cron
	plans    planFetcher
	notifier reminderNotifier
	mode     int
}

func NewReminder(spec string, location *time.Location, plans planFetcher, notifier reminderNotifier, mode int) (*Reminder, error) {
	if location == nil {
		location = time.UTC
	}
	r := &Reminder{
		cron:     cron.New(cron.WithLocation(location)),
		plans:    plans,
		notifier: notifier,
		mode:     mode,
	}

	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("invalid reminder cron %q: %w", spec, err)
	}
	return r, nil
}

func (r *Reminder) Start() {
	r.cron.Start()
	for _, e := range r.cron.Entries() {
		log.Infof("reminder: next run at %s", e.Next)
	}
}

// Stop stops the scheduler and waits for a running push to finish.
func (r *Reminder) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
	defer cancel()
	if err := r.Push(ctx); err != nil {
		log.Errorf("reminder: %s", err)
	}
}

// Push fetches the today plan and sends it as a daily reminder.
func (r *Reminder) Push(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalBotTracer.Start(ctx, "bot.reminder.push")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan, err := r.plans.TodayPlan(ctx, r.mode)
	if err != nil {
		return fmt.Errorf("fetch today plan: %w", err)
	}

	err = r.notifier.NotifyNow(ctx, notify.Event{
		Type:        notify.EventDailyReminder,
		SessionName: plan.Session.SessionName,
		Date:        plan.Date,
		Exercises:   len(plan.Exercises),
		Text:        "🔔 *Nhắc nhở tập luyện*\n\n" + TodayPlanText(plan),
	})
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	log.Infof("reminder: sent plan %s for %s", plan.Session.SessionID, plan.Date)
	return nil
}
