package check

import "time"

// Check is a single application-wide boolean flag. At most one row exists.
type Check struct {
	ID        string
	Value     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
