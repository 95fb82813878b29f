// Package audit records review decisions on registration requests. Events are
// append-only; they answer "who decided what, when, and why" after the fact.
package audit

import (
	"context"
	"time"
)

// Action distinguishes the recorded decisions.
type Action string

const (
	ActionApproved Action = "request_approved"
	ActionRejected Action = "request_rejected"
	ActionDeleted  Action = "request_deleted"
)

// Event is one review decision.
type Event struct {
	RequestID int64
	Action    Action
	ActorID   int64
	Reason    string
	Timestamp time.Time
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByRequest(ctx context.Context, requestID int64) ([]Event, error)
}
