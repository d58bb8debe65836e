// Package common defines shared constants and sentinel errors used across
// client and server layers of zkauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Protocol outcomes of the authentication flow.
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrUnknownUser       = errors.New("unknown user")
	ErrUnknownSession    = errors.New("unknown session")
	ErrInvalidProof      = errors.New("invalid proof")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
