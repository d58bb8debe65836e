// Package registrations stores user registrations: the public
// commitment pair each user publishes when enrolling.
package registrations

import "context"

type Repository interface {
	// Create stores a new registration. Returns common.ErrorAlreadyExists
	// if the user is already registered.
	Create(ctx context.Context, reg *Registration) error

	// Upsert stores a registration, replacing any existing one.
	Upsert(ctx context.Context, reg *Registration) error

	// Get returns the registration for a user, or common.ErrorNotFound.
	Get(ctx context.Context, user string) (*Registration, error)
}
