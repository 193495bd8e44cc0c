package entities

import (
	"time"

	"planescheduler/flightline/internal/constants"
)

type Reservation struct {
	ID          int64                         `db:"id" json:"id"`
	AircraftID  int64                         `db:"aircraft_id" json:"aircraft_id"`
	UserID      int64                         `db:"user_id" json:"user_id"`
	Title       constants.ReservationCategory `db:"title" json:"title"`
	StartTime   time.Time                     `db:"start_time" json:"start_time"`
	EndTime     time.Time                     `db:"end_time" json:"end_time"`
	Notes       *string                       `db:"notes" json:"notes"`
	StartHobbs  *float64                      `db:"start_hobbs" json:"start_hobbs"`
	EndHobbs    *float64                      `db:"end_hobbs" json:"end_hobbs"`
	CompletedAt *time.Time                    `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time                     `db:"created_at" json:"created_at"`
}

// Completed reports whether the reservation has left the editable state.
func (r *Reservation) Completed() bool {
	return r.CompletedAt != nil
}

// ReservationDetail is a reservation row joined with its aircraft and owner,
// as served by the calendar listing.
type ReservationDetail struct {
	Reservation
	TailNumber string  `db:"tail_number" json:"tail_number"`
	Make       string  `db:"make" json:"make"`
	Model      string  `db:"model" json:"model"`
	LastHobbs  float64 `db:"last_hobbs" json:"last_hobbs"`
	Username   string  `db:"username" json:"username"`
}

// UsageRow is one line of the completed-reservation usage report.
type UsageRow struct {
	ID          int64      `db:"id"`
	TailNumber  string     `db:"tail_number"`
	Make        string     `db:"make"`
	Model       string     `db:"model"`
	Username    string     `db:"username"`
	Title       string     `db:"title"`
	StartTime   time.Time  `db:"start_time"`
	EndTime     time.Time  `db:"end_time"`
	StartHobbs  *float64   `db:"start_hobbs"`
	EndHobbs    *float64   `db:"end_hobbs"`
	HobbsUsed   *float64   `db:"hobbs_used"`
	CompletedAt *time.Time `db:"completed_at"`
	Notes       *string    `db:"notes"`
}
