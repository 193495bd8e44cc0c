package db

import "github.com/jmoiron/sqlx"

const reservationSchema = `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGSERIAL PRIMARY KEY,
	aircraft_id BIGINT NOT NULL REFERENCES aircraft(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL REFERENCES users(id),
	title VARCHAR(16) NOT NULL,
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL,
	notes TEXT,
	start_hobbs DOUBLE PRECISION,
	end_hobbs DOUBLE PRECISION,
	completed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (end_time > start_time)
);

CREATE INDEX IF NOT EXISTS idx_reservations_aircraft_time
	ON reservations (aircraft_id, start_time, end_time);
`

// EnsureReservationSchema creates the reservation table used by the sqlx
// repository. Runs after the GORM migration so the FK targets exist.
func EnsureReservationSchema(db *sqlx.DB) error {
	_, err := db.Exec(reservationSchema)
	return err
}
