package model

import "time"

// ClimbModel mirrors the 'climbing' table, one row per logged ascent.
// Rows are append-only.
type ClimbModel struct {
	ClimbingID int64     `gorm:"column:climbing_id;primaryKey;autoIncrement"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	RouteID    int64     `gorm:"column:route_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:climbed_at"`
}

// TableName explicitly sets the table name for GORM.
func (ClimbModel) TableName() string {
	return "climbing"
}
