package domain

import "time"

// StylistProfile carries the public-facing identity of a stylist account.
type StylistProfile struct {
	ID              string
	UserID          string
	DisplayName     string
	Bio             string
	Specialties     []string
	HourlyRateCents int64
	StripeAccountID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DancerProfile carries the public-facing identity of a dancer account.
type DancerProfile struct {
	ID          string
	UserID      string
	DisplayName string
	DanceStyles []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
