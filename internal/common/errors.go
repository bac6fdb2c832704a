// Package common defines shared constants and sentinel errors used across
// the PrepWyse client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Backend collaborator errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	// Persistence boundary errors.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Session lifecycle errors.
	ErrMalformedState = errors.New("malformed persisted state")
	ErrTokenExpired   = errors.New("session token expired")

	// Generic flow control.
	ErrInternal = errors.New("internal error")
	ErrNotFound = errors.New("not found")
)
