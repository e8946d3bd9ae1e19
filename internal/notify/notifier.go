package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/telemetry/metrics"
)

const DefaultSendTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("telegram not configured")

type messageSender interface {
	SendMessage(ctx context.Context, params SendMessageParams) error
}

// Notifier pushes events to one Telegram chat.
// Without a client or chat id every call is a no-op.
type Notifier struct {
	sender      messageSender
	chatID      string
	sendTimeout time.Duration
	metrics     *metrics.Manager
	wg          sync.WaitGroup
}

func NewNotifier(sender messageSender, chatID string, metricsManager *metrics.Manager) *Notifier {
	n := &Notifier{
		chatID:      chatID,
		sendTimeout: DefaultSendTimeout,
		metrics:     metricsManager,
	}
	// a nil *Client in the interface would not compare to nil later
	if c, ok := sender.(*Client); !ok || c != nil {
		n.sender = sender
	}
	return n
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.sender != nil && n.chatID != ""
}

// Notify sends the event in the background. Failures are logged and counted, never returned.
func (n *Notifier) Notify(event Event) {
	if !n.Enabled() {
		log.Debugf("telegram not configured, skipping notification %s", event.Type)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
		defer cancel()
		if err := n.NotifyNow(ctx, event); err != nil {
			log.Errorf("notify %s: %s", event.Type, err)
		}
	}()
}

// NotifyNow sends the event and waits for the result.
func (n *Notifier) NotifyNow(ctx context.Context, event Event) error {
	if !n.Enabled() {
		return ErrNotConfigured
	}

	text, err := event.Message()
	if err != nil {
		n.count(event.Type, "invalid")
		return err
	}

	err = n.sender.SendMessage(ctx, SendMessageParams{
		ChatID:                n.chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	})
	if err != nil {
		n.count(event.Type, "failed")
		return err
	}

	n.count(event.Type, "sent")
	log.Debugf("telegram notification %s sent", event.Type)
	return nil
}

// Wait blocks until all background notifications are done.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) count(eventType EventType, result string) {
	if n.metrics == nil {
		return
	}
	n.metrics.CounterNotifications.With(prometheus.Labels{
		"event":  string(eventType),
		"result": result,
	}).Inc()
}
