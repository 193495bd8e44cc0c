package gorm

import "time"

type Aircraft struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TailNumber string    `gorm:"column:tail_number;size:16;uniqueIndex" json:"tail_number"`
	Make       string    `gorm:"column:make;size:50" json:"make"`
	Model      string    `gorm:"column:model;size:50" json:"model"`
	Year       *int      `gorm:"column:year" json:"year"`
	LastHobbs  float64   `gorm:"column:last_hobbs;default:0" json:"last_hobbs"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
