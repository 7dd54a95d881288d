package admins

import "time"

// Admin is the administrator identity seeded at process start. There is no
// admin-management API; the record is immutable after seeding.
type Admin struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
