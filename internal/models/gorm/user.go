package gorm

import (
	"time"

	"planescheduler/flightline/internal/constants"
)

type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;size:50;uniqueIndex" json:"username"`
	Email    string `gorm:"column:email;size:100;uniqueIndex" json:"email"`
	// Opaque bcrypt hash written by the login front end; never serialized.
	Password   string              `gorm:"column:password;size:100" json:"-"`
	Privileges constants.Privilege `gorm:"column:privileges;size:16;default:pending" json:"privileges"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
