package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/stagedoor/stagedoor-api/internal/auth"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewUnavailable(message string) error {
	return NewDomainError("UNAVAILABLE", message, http.StatusServiceUnavailable, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// authErrorMap pins each auth failure to its HTTP shape. InvalidCredentials
// deliberately carries no detail about which check failed.
var authErrorMap = []struct {
	sentinel error
	code     string
	message  string
	status   int
}{
	{auth.ErrInvalidInput, "INVALID_INPUT", "invalid email or password format", http.StatusBadRequest},
	{auth.ErrInvalidCredentials, "INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized},
	{auth.ErrUnauthenticated, "UNAUTHENTICATED", "authentication required", http.StatusUnauthorized},
	{auth.ErrForbidden, "FORBIDDEN", "insufficient role", http.StatusForbidden},
	{auth.ErrTokenExpired, "TOKEN_EXPIRED", "session expired", http.StatusUnauthorized},
	{auth.ErrTokenInvalid, "TOKEN_INVALID", "invalid session token", http.StatusUnauthorized},
	{auth.ErrStoreUnavailable, "STORE_UNAVAILABLE", "account lookup unavailable", http.StatusServiceUnavailable},
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	for _, m := range authErrorMap {
		if errors.Is(err, m.sentinel) {
			return &DomainError{Code: m.code, Message: m.message, HTTPStatus: m.status, Err: err}
		}
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
