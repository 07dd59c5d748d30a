// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrNotFound        = errors.New("affiliate not found")
	ErrMalformedRecord = errors.New("malformed user record")

	// Identity provider errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Transport errors (network, timeouts, unexpected upstream status).
	ErrUnavailable = errors.New("service unavailable")

	// Local persistence errors.
	ErrStorage = errors.New("local storage error")

	// Input errors.
	ErrValidation = errors.New("validation error")

	// Flow control.
	ErrInProgress = errors.New("login already in progress")
)
