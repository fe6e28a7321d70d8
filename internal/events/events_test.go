package events

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_WireFormat(t *testing.T) {
	event := New(TransactionCreated, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	body, err := event.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"transaction.created"`)
	assert.Contains(t, string(body), `"ownerId"`)

	decoded, err := FromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.OwnerID, decoded.OwnerID)
	assert.Equal(t, event.EntityID, decoded.EntityID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}

func TestNewAMQPPublisher_BadURL(t *testing.T) {
	_, err := NewAMQPPublisher("amqp://127.0.0.1:1/", "events")
	assert.ErrorContains(t, err, "dial AMQP")
}
