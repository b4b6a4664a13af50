package entity

import "time"

// Climb is a single logged ascent linking a user to a route.
// Climb records are immutable once created.
type Climb struct {
	ID        int64
	UserID    int64
	RouteID   int64
	ClimbedAt time.Time
}
