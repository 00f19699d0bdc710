package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// inMemoryDispatcher delivers booking lifecycle events synchronously, in
// subscription order. A failing handler is logged and skipped; it never
// blocks the booking operation that published the event.
type inMemoryDispatcher struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher logging handler failures to
// the given logger.
func NewInMemoryDispatcher(logger *zap.Logger) Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inMemoryDispatcher{
		logger:   logger,
		handlers: make(map[EventType][]EventHandler),
	}
}

// Publish invokes every handler subscribed to the event's type. Handler
// errors do not abort delivery to the remaining handlers.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.handlers[event.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			d.logger.Error("booking event handler failed",
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.String("booking_id", event.BookingID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}
