package audit

import "context"

// ChannelStore queues appends for the worker while serving reads from the
// durable store underneath. It keeps audit writes off the review path.
type ChannelStore struct {
	inbox chan<- Event
	reads Store
}

func NewChannelStore(inbox chan<- Event, reads Store) *ChannelStore {
	return &ChannelStore{inbox: inbox, reads: reads}
}

func (s *ChannelStore) Append(ctx context.Context, event Event) error {
	select {
	case s.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ChannelStore) ListByRequest(ctx context.Context, requestID int64) ([]Event, error) {
	return s.reads.ListByRequest(ctx, requestID)
}
