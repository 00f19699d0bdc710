package events

import (
	"time"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingRequested EventType = "booking_requested"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventBookingDeclined  EventType = "booking_declined"
	EventBookingCancelled EventType = "booking_cancelled"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role   domain.Role `json:"role"`
	UserID string      `json:"user_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	BookingID string      `json:"booking_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingRequestedPayload payload.
type BookingRequestedPayload struct {
	EventID   string `json:"event_id"`
	StylistID string `json:"stylist_id"`
	Note      string `json:"note,omitempty"`
}

// BookingStatusPayload payload for confirm/decline/cancel transitions.
type BookingStatusPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}
