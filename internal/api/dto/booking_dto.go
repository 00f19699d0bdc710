package dto

import "time"

// CreateBookingRequest payload for a dancer booking a stylist.
type CreateBookingRequest struct {
	EventID   string `json:"event_id"`
	StylistID string `json:"stylist_id"`
	Note      string `json:"note,omitempty"`
}

// BookingResponse is the booking shape returned to both sides.
type BookingResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	DancerID   string    `json:"dancer_id"`
	StylistID  string    `json:"stylist_id"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// PayoutLinkResponse wraps a provider-hosted URL.
type PayoutLinkResponse struct {
	URL string `json:"url"`
}
