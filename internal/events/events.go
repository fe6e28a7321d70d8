// Package events publishes change notifications for transactions and budgets.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Type string

const (
	TransactionCreated Type = "transaction.created"
	TransactionUpdated Type = "transaction.updated"
	TransactionDeleted Type = "transaction.deleted"
	BudgetSet          Type = "budget.set"
)

// Event is the message body. It carries ids only; consumers read the current
// state from the API.
type Event struct {
	Type       Type      `json:"type"`
	OwnerID    uuid.UUID `json:"ownerId"`
	EntityID   uuid.UUID `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(eventType Type, ownerID, entityID uuid.UUID) Event {
	return Event{
		Type:       eventType,
		OwnerID:    ownerID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
