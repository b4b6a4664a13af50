package entity

import "time"

// Route is a climbing route. Grade is the route's YDS difficulty rating
// ("5.9", "5.10a", ...); a nil grade means the route is ungraded and is
// excluded from leaderboard aggregation.
type Route struct {
	ID        int64
	Name      string
	Location  string
	Grade     *string
	CreatedAt time.Time
}
