package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event describes a committed change to one record.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

func New(eventType, key string, payload interface{}) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	// Destination names the transport for logs and metrics.
	Destination() string
	Close() error
}

// Noop drops every event. It is the publisher when events are disabled.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Destination() string                  { return "none" }
func (Noop) Close() error                         { return nil }
