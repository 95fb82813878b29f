package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherStampsTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store)

	require.NoError(t, pub.Emit(context.Background(), Event{
		RequestID: 4,
		Action:    ActionRejected,
		ActorID:   9,
		Reason:    "incomplete listing",
	}))

	events, err := pub.List(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, ActionRejected, events[0].Action)
}

func TestWorkerDrainsInbox(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 2)
	worker := NewWorker(store, inbox, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{RequestID: 1, Action: ActionApproved, ActorID: 2, Timestamp: time.Now()}
	inbox <- Event{RequestID: 1, Action: ActionDeleted, ActorID: 2, Timestamp: time.Now()}

	assert.Eventually(t, func() bool {
		events, err := store.ListByRequest(context.Background(), 1)
		return err == nil && len(events) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerDrainsBufferOnShutdown(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 4)
	worker := NewWorker(store, inbox, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Cancel before Run ever reads from the inbox; the buffered events must
	// still land in the store.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inbox <- Event{RequestID: 7, Action: ActionApproved, ActorID: 2, Timestamp: time.Now()}
	inbox <- Event{RequestID: 7, Action: ActionRejected, ActorID: 2, Timestamp: time.Now()}

	assert.ErrorIs(t, worker.Run(ctx), context.Canceled)

	events, err := store.ListByRequest(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
