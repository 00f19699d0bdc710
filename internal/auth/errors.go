package auth

import "errors"

// Failure taxonomy for the authentication pipeline. Unknown user, missing
// password hash and wrong password all collapse into ErrInvalidCredentials
// so callers cannot probe which accounts exist.
var (
	ErrInvalidInput       = errors.New("invalid credential input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenExpired       = errors.New("session token expired")
	ErrTokenInvalid       = errors.New("session token invalid")
	ErrStoreUnavailable   = errors.New("user store unavailable")
)
