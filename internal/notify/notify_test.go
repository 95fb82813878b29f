package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageStampsIdentity(t *testing.T) {
	msg := NewMessage("a@example.com", "subject", "body")
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.EnqueuedAt.IsZero())

	other := NewMessage("a@example.com", "subject", "body")
	assert.NotEqual(t, msg.ID, other.ID)
}

func TestTemplatesCarryDetails(t *testing.T) {
	welcome := Welcome("host@example.com", "Ana Silva", "Casa Azul", "https://x/login", "https://x/dashboard")
	assert.Equal(t, "host@example.com", welcome.To)
	assert.Contains(t, welcome.Body, "Ana Silva")
	assert.Contains(t, welcome.Body, "Casa Azul")
	assert.Contains(t, welcome.Body, "https://x/login")
	assert.Contains(t, welcome.Body, "https://x/dashboard")

	rejection := Rejection("host@example.com", "Ana Silva", "Casa Azul", "blurry photos")
	assert.Contains(t, rejection.Body, "blurry photos")

	confirmation := ApplicantConfirmation("host@example.com", "Ana Silva", "Casa Azul")
	assert.Contains(t, confirmation.Body, "awaiting review")

	admin := AdminNewRequest("admin@example.com", "Rev Iewer", "Casa Azul", "Antioquia")
	assert.Contains(t, admin.Body, "Antioquia")
}

func TestInMemoryQueueRecordsByRecipient(t *testing.T) {
	q := NewInMemoryQueue()
	require.NoError(t, q.Enqueue(context.Background(), NewMessage("a@example.com", "s1", "b1")))
	require.NoError(t, q.Enqueue(context.Background(), NewMessage("b@example.com", "s2", "b2")))

	assert.Len(t, q.Messages(), 2)
	assert.Len(t, q.To("a@example.com"), 1)
	assert.Empty(t, q.To("c@example.com"))
}
