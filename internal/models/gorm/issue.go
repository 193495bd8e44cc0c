package gorm

import (
	"time"

	"planescheduler/flightline/internal/constants"
)

type Issue struct {
	ID          int64                   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AircraftID  int64                   `gorm:"column:aircraft_id;index" json:"aircraft_id"`
	ReportedBy  int64                   `gorm:"column:reported_by" json:"reported_by"`
	Title       string                  `gorm:"column:title;size:120" json:"title"`
	Description *string                 `gorm:"column:description;type:text" json:"description"`
	Severity    constants.IssueSeverity `gorm:"column:severity;size:16" json:"severity"`
	Status      constants.IssueStatus   `gorm:"column:status;size:16;default:open" json:"status"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ResolvedAt  *time.Time              `gorm:"column:resolved_at" json:"resolved_at"`

	// Relationships
	Aircraft *Aircraft `gorm:"foreignKey:AircraftID" json:"-"`
	Reporter *User     `gorm:"foreignKey:ReportedBy" json:"-"`
}

// TableName specifies the table name for GORM
func (Issue) TableName() string {
	return "aircraft_issues"
}

// IssueDetail is the list shape: an issue joined with its aircraft tail
// number and reporter name.
type IssueDetail struct {
	Issue
	TailNumber     string `json:"tail_number"`
	ReportedByName string `json:"reported_by_name"`
}
