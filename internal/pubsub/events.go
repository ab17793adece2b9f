package pubsub

import "context"

const (
	// CreatedEvent marks a fresh resource, such as a new clipboard capture.
	CreatedEvent EventType = "created"
	// UpdatedEvent marks a change to an existing resource.
	UpdatedEvent EventType = "updated"
)

// Subscriber is the receiving side of a broker.
type Subscriber[T any] interface {
	Subscribe(context.Context) <-chan Event[T]
}

type (
	// EventType identifies the kind of event.
	EventType string

	// Event represents a moment in a resource's lifecycle.
	Event[T any] struct {
		Type    EventType
		Payload T
	}

	// Publisher is the sending side of a broker.
	Publisher[T any] interface {
		Publish(EventType, T)
	}
)
