package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")

	// ErrInvalidCredentials is deliberately undifferentiated: unknown email
	// and wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOrExpired covers verification and reset tokens that are
	// unknown, already consumed, or past their expiry. The cases are not
	// distinguished to avoid token/account enumeration.
	ErrInvalidOrExpired = errors.New("invalid or expired token")

	ErrUnauthorized = errors.New("unauthorized")
)
