package notify

import (
	"context"
	"sync"

	dErrors "innflow/pkg/domain-errors"
)

// InMemoryQueue is the test fake for the notification queue.
type InMemoryQueue struct {
	mu       sync.RWMutex
	messages []Message

	FailEnqueue bool
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{}
}

func (q *InMemoryQueue) Enqueue(_ context.Context, msg Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.FailEnqueue {
		return dErrors.New(dErrors.CodeInternal, "queue unavailable")
	}
	q.messages = append(q.messages, msg)
	return nil
}

// Messages returns a copy of everything enqueued so far.
func (q *InMemoryQueue) Messages() []Message {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]Message(nil), q.messages...)
}

// To filters enqueued messages by recipient.
func (q *InMemoryQueue) To(recipient string) []Message {
	q.mu.RLock()
	defer q.mu.RUnlock()
	var out []Message
	for _, m := range q.messages {
		if m.To == recipient {
			out = append(out, m)
		}
	}
	return out
}
