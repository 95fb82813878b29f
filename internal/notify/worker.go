package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"innflow/internal/platform/config"
)

// Worker consumes the notification topic and delivers each message through the
// Sender. Delivery failures are logged and the offset is committed anyway:
// notifications are best-effort, not retried forever.
type Worker struct {
	client *kgo.Client
	sender Sender
	logger *slog.Logger
}

func NewWorker(cfg config.KafkaConfig, sender Sender, logger *slog.Logger) (*Worker, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumerGroup(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka consumer: %w", err)
	}
	return &Worker{client: client, sender: sender, logger: logger}, nil
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	defer w.client.Close()
	for {
		fetches := w.client.PollFetches(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
		if errs := fetches.Errors(); len(errs) > 0 {
			for _, fe := range errs {
				w.logger.Error("notification fetch error", "topic", fe.Topic, "error", fe.Err)
			}
		}

		fetches.EachRecord(func(record *kgo.Record) {
			var msg Message
			if err := json.Unmarshal(record.Value, &msg); err != nil {
				w.logger.Error("malformed notification dropped", "error", err)
				return
			}
			if err := w.sender.Send(ctx, msg); err != nil {
				w.logger.Warn("notification delivery failed",
					"message_id", msg.ID,
					"to", msg.To,
					"error", err,
				)
			}
		})
	}
}
