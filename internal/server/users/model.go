package users

import "time"

// User is the resource managed by the service. ID is assigned by the store;
// callers never supply it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatePatch carries a partial update. Only non-nil fields are applied.
type UpdatePatch struct {
	Name  *string
	Email *string
}
