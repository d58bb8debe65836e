package client

import "errors"

var (
	// ErrUnavailable means the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthenticationFailed covers every rejected login: the server
	// does not distinguish a wrong password from a stale session.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
