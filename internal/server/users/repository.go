// Package users implements the user resource: model, concurrent store, and
// the service layer the transport talks to.
package users

import "context"

type Repository interface {
	// Create stores a new user and assigns its ID.
	Create(ctx context.Context, name, email string) (*User, error)

	// Get returns the user with the given id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*User, error)

	// List returns all users. Iteration order is unspecified; callers must
	// not rely on it.
	List(ctx context.Context) ([]*User, error)

	// Update applies the non-nil fields of patch to the user with the given
	// id and returns the updated record, or common.ErrorNotFound.
	Update(ctx context.Context, id string, patch UpdatePatch) (*User, error)

	// Delete removes the user with the given id, or returns
	// common.ErrorNotFound (including for already-deleted ids).
	Delete(ctx context.Context, id string) error
}
