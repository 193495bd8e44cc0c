package constants

// ReservationCategory is the reservation "title" column. Despite the column
// name it is a type tag, not free text.
type ReservationCategory string

const (
	CategoryPersonal    ReservationCategory = "Personal"
	CategoryShared      ReservationCategory = "Shared"
	CategoryMaintenance ReservationCategory = "Maintenance"
)

func (c ReservationCategory) String() string { return string(c) }

// Valid reports whether c is one of the three category tags.
func (c ReservationCategory) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryShared, CategoryMaintenance:
		return true
	}
	return false
}

// IssueSeverity mirrors the aircraft_issues.severity column
type IssueSeverity string

const (
	SeverityLow       IssueSeverity = "low"
	SeverityMedium    IssueSeverity = "medium"
	SeverityHigh      IssueSeverity = "high"
	SeverityGrounding IssueSeverity = "grounding"
)

func (s IssueSeverity) String() string { return string(s) }

func (s IssueSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityGrounding:
		return true
	}
	return false
}

// IssueStatus mirrors the aircraft_issues.status column
type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueResolved:
		return true
	}
	return false
}
