package gorm

type Subscription struct {
	UserID     int64 `gorm:"column:user_id;primaryKey" json:"user_id"`
	AircraftID int64 `gorm:"column:aircraft_id;primaryKey" json:"aircraft_id"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "user_aircraft_subscriptions"
}
