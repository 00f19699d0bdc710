package domain

import "time"

// BookingStatus enumerates lifecycle states for bookings.
type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "REQUESTED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusDeclined  BookingStatus = "DECLINED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking links a dancer to a stylist for a specific event.
type Booking struct {
	ID         string
	EventID    string
	DancerID   string
	StylistID  string
	Status     BookingStatus
	Note       string
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
