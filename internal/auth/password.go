package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a real bcrypt digest of a random throwaway value. It is
// compared against when no stored hash exists so the failure path costs
// the same as a genuine mismatch.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Hasher produces and verifies salted bcrypt password digests.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted digest. Two calls on the same plaintext yield
// different digests because bcrypt generates a fresh salt per call.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored digest. It never
// returns an error; malformed digests and mismatches both read as false.
// bcrypt's comparison is constant-time with respect to mismatch position.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// burnComparison runs a comparison against the dummy digest, equalizing
// timing on branches that never reach a real stored hash.
func (h *Hasher) burnComparison(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
