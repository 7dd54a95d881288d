// Package admins holds the administrator credential store and the
// authentication service built on top of it.
package admins

import "context"

type Repository interface {
	// Get returns the admin with the given username, or
	// common.ErrorNotFound.
	Get(ctx context.Context, username string) (*Admin, error)
}
