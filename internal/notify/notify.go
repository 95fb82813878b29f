// Package notify models the outbound notification channel. Senders enqueue
// and return immediately; delivery happens out of process (or in the worker)
// and is best-effort by contract.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is one templated email awaiting delivery.
type Message struct {
	ID         string    `json:"id"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// NewMessage stamps identity and enqueue time.
func NewMessage(to, subject, body string) Message {
	return Message{
		ID:         uuid.NewString(),
		To:         to,
		Subject:    subject,
		Body:       body,
		EnqueuedAt: time.Now().UTC(),
	}
}

// Queue is the enqueue-only contract the orchestrators consume. Enqueue must
// not block on delivery; an error means the message was not accepted.
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Sender performs the actual delivery on the consumer side.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
