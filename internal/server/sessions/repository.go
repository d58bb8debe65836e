// Package sessions stores in-flight authentication challenges. Entries
// are single-use and carry a deadline so abandoned attempts do not
// accumulate.
package sessions

import "context"

type Repository interface {
	// Create stores a new session keyed by its AuthID. Returns
	// common.ErrorAlreadyExists on an AuthID collision.
	Create(ctx context.Context, s *Session) error

	// Take atomically looks up and removes the session. Missing,
	// expired, and already-consumed sessions all yield
	// common.ErrorNotFound, so two concurrent calls for the same
	// AuthID can never both succeed.
	Take(ctx context.Context, authID string) (*Session, error)
}
