package domain

import "time"

// EventStatus enumerates lifecycle states for dance events.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Event is a dance event dancers can book stylists for.
type Event struct {
	ID          string
	Name        string
	Description string
	Venue       string
	City        string
	StartsAt    time.Time
	EndsAt      time.Time
	Status      EventStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
