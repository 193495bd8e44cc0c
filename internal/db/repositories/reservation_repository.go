package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/models/entities"
)

// ReservationRepository owns the reservation table. Every write that depends
// on a prior read (conflict check, completion precondition) runs inside one
// transaction so concurrent requests cannot interleave between check and act.
type ReservationRepository struct {
	db *sqlx.DB
}

func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db}
}

// ListFilter narrows the reservation listing. Nil fields are ignored.
type ListFilter struct {
	AircraftID *int64
	Start      *time.Time
	End        *time.Time
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*entities.Reservation, error) {
	var res entities.Reservation

	err := r.db.QueryRowxContext(ctx, constants.GetReservationByID, id).StructScan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// Create persists a new reservation after checking the no-overlap invariant
// against the same serializable transaction that performs the insert.
func (r *ReservationRepository) Create(ctx context.Context, res *entities.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkConflict(ctx, tx, res.AircraftID, res.StartTime, res.EndTime, 0); err != nil {
		return err
	}

	err = tx.QueryRowxContext(ctx, constants.InsertReservation,
		res.AircraftID,
		res.UserID,
		res.Title,
		res.StartTime,
		res.EndTime,
		res.Notes,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return translatePgError(err)
	}

	// Under serializable isolation a losing race usually fails at COMMIT,
	// not at the statement, so the commit error needs the same mapping.
	if err := tx.Commit(); err != nil {
		return translatePgError(err)
	}
	return nil
}

// Update overwrites the mutable reservation fields. The conflict check
// excludes the reservation's own id so a reservation never conflicts with
// itself.
func (r *ReservationRepository) Update(ctx context.Context, res *entities.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkConflict(ctx, tx, res.AircraftID, res.StartTime, res.EndTime, res.ID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, constants.UpdateReservation,
		res.AircraftID,
		res.Title,
		res.StartTime,
		res.EndTime,
		res.Notes,
		res.ID,
	)
	if err != nil {
		return translatePgError(err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("reservation %w", common.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return translatePgError(err)
	}
	return nil
}

// Complete records the hobbs readings, stamps completed_at, and advances the
// aircraft meter in one transaction. The reservation row is locked so two
// completions cannot both observe "not completed". This is the only write
// path for aircraft.last_hobbs.
func (r *ReservationRepository) Complete(ctx context.Context, id int64, startHobbs, endHobbs float64) (*entities.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var res entities.Reservation
	err = tx.QueryRowxContext(ctx, constants.GetReservationByIDForUpdate, id).StructScan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if res.Completed() {
		return nil, fmt.Errorf("reservation already completed: %w", common.ErrInvalidState)
	}

	err = tx.QueryRowxContext(ctx, constants.CompleteReservation, startHobbs, endHobbs, id).Scan(&res.CompletedAt)
	if err != nil {
		return nil, err
	}
	res.StartHobbs = &startHobbs
	res.EndHobbs = &endHobbs

	if _, err := tx.ExecContext(ctx, constants.SetAircraftLastHobbs, endHobbs, res.AircraftID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, constants.DeleteReservation, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("reservation %w", common.ErrNotFound)
	}
	return nil
}

// List returns reservations joined with aircraft and owner, ordered by start
// time. Filters mirror the calendar query parameters.
func (r *ReservationRepository) List(ctx context.Context, filter ListFilter) ([]entities.ReservationDetail, error) {
	query := constants.ListReservationsBase
	args := []interface{}{}

	if filter.AircraftID != nil {
		args = append(args, *filter.AircraftID)
		query += " AND r.aircraft_id = $" + strconv.Itoa(len(args))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		query += " AND r.end_time >= $" + strconv.Itoa(len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		query += " AND r.start_time <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY r.start_time"

	rows := []entities.ReservationDetail{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListCompletedUsage returns the completed reservations inside [start, end]
// for the usage report, optionally narrowed to one aircraft.
func (r *ReservationRepository) ListCompletedUsage(ctx context.Context, start, end time.Time, aircraftID *int64) ([]entities.UsageRow, error) {
	query := constants.ListCompletedUsageBase
	args := []interface{}{start, end}

	if aircraftID != nil {
		args = append(args, *aircraftID)
		query += " AND r.aircraft_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY r.start_time"

	rows := []entities.UsageRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// checkConflict fails with Conflict when any other reservation for the
// aircraft overlaps the half-open interval [start, end). excludeID = 0 means
// no exclusion.
func checkConflict(ctx context.Context, tx *sqlx.Tx, aircraftID int64, start, end time.Time, excludeID int64) error {
	var conflictID int64
	var err error

	if excludeID == 0 {
		err = tx.QueryRowxContext(ctx, constants.FindConflictingReservation, aircraftID, end, start).Scan(&conflictID)
	} else {
		err = tx.QueryRowxContext(ctx, constants.FindConflictingReservationExcluding, aircraftID, end, start, excludeID).Scan(&conflictID)
	}

	if err == nil {
		return fmt.Errorf("time slot conflicts with an existing reservation: %w", common.ErrConflict)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// translatePgError maps storage-level violations onto the domain taxonomy:
// a broken aircraft FK means the aircraft does not exist, a serialization
// failure means a concurrent booking won the slot.
func translatePgError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("aircraft %w", common.ErrNotFound)
		case "40001": // serialization_failure
			return fmt.Errorf("time slot conflicts with a concurrent reservation: %w", common.ErrConflict)
		}
	}
	return err
}
