package domain

import "time"

// Role enumerates the account types the platform recognizes.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStylist Role = "STYLIST"
	RoleDancer  Role = "DANCER"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStylist, RoleDancer:
		return true
	default:
		return false
	}
}

// User is the persisted account record. PasswordHash is nil for accounts
// provisioned without a credential (e.g. seeded or externally created).
type User struct {
	ID             string
	Email          string
	PasswordHash   *string
	Role           Role
	FirstName      string
	LastName       string
	StylistProfile *StylistProfile
	DancerProfile  *DancerProfile
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
