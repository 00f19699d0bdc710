package dto

import "time"

// CreateEventRequest payload for admin event creation.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Publish     bool      `json:"publish"`
}

// EventResponse is the public event shape.
type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
}

// StylistResponse is the public directory shape.
type StylistResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	DisplayName     string   `json:"display_name"`
	Bio             string   `json:"bio,omitempty"`
	Specialties     []string `json:"specialties,omitempty"`
	HourlyRateCents int64    `json:"hourly_rate_cents"`
}
