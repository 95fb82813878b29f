package audit

import (
	"context"
	"time"
)

// Publisher captures review decisions. It is append-only and goes through the
// storage layer so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) List(ctx context.Context, requestID int64) ([]Event, error) {
	return p.store.ListByRequest(ctx, requestID)
}
