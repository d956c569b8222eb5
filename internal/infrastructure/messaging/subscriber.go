package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/nats-io/nats.go"
)

// AcceptedReply is the body Adyen expects when a notification was taken in.
const AcceptedReply = "[accepted]"

const handleTimeout = 30 * time.Second

// NotificationProcessor applies a webhook envelope to the ledger.
type NotificationProcessor interface {
	Process(ctx context.Context, n application.Notification) error
}

// NotificationSubscriber feeds webhook envelopes published on a NATS subject
// into the notification processor. Members of one queue group share the load.
type NotificationSubscriber struct {
	conn      *nats.Conn
	subject   string
	queue     string
	processor NotificationProcessor
	isIgnored func(error) bool
	logger    *slog.Logger
	sub       *nats.Subscription
}

// NewNotificationSubscriber builds a subscriber. Errors for which isIgnored
// reports true are acknowledged like successes.
func NewNotificationSubscriber(
	conn *nats.Conn,
	subject, queue string,
	processor NotificationProcessor,
	isIgnored func(error) bool,
	logger *slog.Logger,
) *NotificationSubscriber {
	return &NotificationSubscriber{
		conn:      conn,
		subject:   subject,
		queue:     queue,
		processor: processor,
		isIgnored: isIgnored,
		logger:    logger.With("subject", subject),
	}
}

// Start subscribes and handles messages until ctx is done, then drains the
// subscription.
func (s *NotificationSubscriber) Start(ctx context.Context) error {
	sub, err := s.conn.QueueSubscribe(s.subject, s.queue, func(msg *nats.Msg) {
		msgCtx, cancel := context.WithTimeout(ctx, handleTimeout)
		defer cancel()
		s.reply(msg, s.handle(msgCtx, msg.Data))
	})
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", s.subject, err)
	}
	s.sub = sub
	s.logger.Info("notification subscriber started", "queue", s.queue)

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			s.logger.Warn("failed to drain subscription", "error", err)
		}
		s.logger.Info("notification subscriber stopped")
	}()
	return nil
}

func (s *NotificationSubscriber) handle(ctx context.Context, data []byte) error {
	var n application.Notification
	if err := sonic.Unmarshal(data, &n); err != nil {
		s.logger.Warn("discarding undecodable notification", "error", err)
		return application.NewInvalidJSONInputError("invalid notification envelope", err)
	}

	err := s.processor.Process(ctx, n)
	if err != nil && s.isIgnored != nil && s.isIgnored(err) {
		s.logger.Info("notification acknowledged without changes", "reason", err)
		return nil
	}
	if err != nil {
		s.logger.Error("notification processing failed",
			"items", len(n.NotificationItems),
			"retryable", application.IsRetryable(err),
			"error", err,
		)
	}
	return err
}

// reply answers request-style publishes; plain publishes have no reply subject.
func (s *NotificationSubscriber) reply(msg *nats.Msg, err error) {
	if msg.Reply == "" {
		return
	}
	body := []byte(AcceptedReply)
	if err != nil {
		body = []byte(application.ToErrorCode(err))
	}
	if rerr := msg.Respond(body); rerr != nil {
		s.logger.Warn("failed to reply to notification", "error", rerr)
	}
}
