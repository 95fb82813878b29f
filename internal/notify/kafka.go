package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"innflow/internal/platform/config"
)

// KafkaQueue publishes notification messages to a Kafka topic. Delivery to
// recipients is the consumer group's job; producers only guarantee the message
// reached the broker.
type KafkaQueue struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaQueue connects a producer and ensures the topic exists.
func NewKafkaQueue(ctx context.Context, cfg config.KafkaConfig, logger *slog.Logger) (*KafkaQueue, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}

	if err := ensureTopic(ctx, client, cfg.Topic); err != nil {
		client.Close()
		return nil, err
	}

	return &KafkaQueue{client: client, topic: cfg.Topic, logger: logger}, nil
}

// Enqueue produces asynchronously; broker-side failures are logged by the
// produce callback, never surfaced to the business operation that enqueued.
func (q *KafkaQueue) Enqueue(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	record := &kgo.Record{Topic: q.topic, Key: []byte(msg.To), Value: payload}
	q.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			q.logger.Error("notification produce failed",
				"message_id", msg.ID,
				"to", msg.To,
				"error", err,
			)
		}
	})
	return nil
}

func (q *KafkaQueue) Close() {
	q.client.Close()
}

func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, t := range resp {
		if t.Err != nil && !errors.Is(t.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", t.Topic, t.Err)
		}
	}
	return nil
}
