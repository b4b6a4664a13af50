package model

import "time"

// RouteModel mirrors the 'routes' table. Grade is the nullable YDS rating;
// routes with a NULL grade never appear in leaderboard aggregation.
type RouteModel struct {
	RouteID   int64   `gorm:"column:route_id;primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Location  string  `gorm:"type:varchar(255)"`
	Grade     *string `gorm:"type:varchar(16)"`
	CreatedAt time.Time

	Climbs []ClimbModel `gorm:"foreignKey:RouteID;references:RouteID"`
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}
