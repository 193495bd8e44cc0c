package constants

const (
	GetReservationByID = `
	SELECT * FROM reservations WHERE id = $1
	`

	// FOR UPDATE so the completed_at precondition is re-checked under the
	// row lock, not just at read time.
	GetReservationByIDForUpdate = `
	SELECT * FROM reservations WHERE id = $1 FOR UPDATE
	`

	FindConflictingReservation = `
	SELECT id FROM reservations
	WHERE aircraft_id = $1 AND start_time < $2 AND end_time > $3
	LIMIT 1
	`

	FindConflictingReservationExcluding = `
	SELECT id FROM reservations
	WHERE aircraft_id = $1 AND start_time < $2 AND end_time > $3 AND id != $4
	LIMIT 1
	`

	InsertReservation = `
	INSERT INTO reservations (aircraft_id, user_id, title, start_time, end_time, notes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	UpdateReservation = `
	UPDATE reservations
	SET aircraft_id = $1, title = $2, start_time = $3, end_time = $4, notes = $5
	WHERE id = $6
	`

	CompleteReservation = `
	UPDATE reservations
	SET start_hobbs = $1, end_hobbs = $2, completed_at = NOW()
	WHERE id = $3
	RETURNING completed_at
	`

	SetAircraftLastHobbs = `
	UPDATE aircraft SET last_hobbs = $1 WHERE id = $2
	`

	DeleteReservation = `
	DELETE FROM reservations WHERE id = $1
	`

	ListReservationsBase = `
	SELECT r.id, r.aircraft_id, r.user_id, r.title, r.start_time, r.end_time,
	       r.notes, r.start_hobbs, r.end_hobbs, r.completed_at, r.created_at,
	       a.tail_number, a.make, a.model, a.last_hobbs, u.username
	FROM reservations r
	JOIN aircraft a ON r.aircraft_id = a.id
	JOIN users u ON r.user_id = u.id
	WHERE 1=1
	`

	ListCompletedUsageBase = `
	SELECT r.id, a.tail_number, a.make, a.model, u.username, r.title,
	       r.start_time, r.end_time, r.start_hobbs, r.end_hobbs,
	       (r.end_hobbs - r.start_hobbs) AS hobbs_used, r.completed_at, r.notes
	FROM reservations r
	JOIN aircraft a ON r.aircraft_id = a.id
	JOIN users u ON r.user_id = u.id
	WHERE r.completed_at IS NOT NULL
	  AND r.start_time >= $1 AND r.end_time <= $2
	`
)
