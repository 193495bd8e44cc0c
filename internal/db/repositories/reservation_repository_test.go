package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/models/entities"
)

const reservationTestSchema = `
CREATE TABLE reservations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	aircraft_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	start_time TIMESTAMP NOT NULL,
	end_time TIMESTAMP NOT NULL,
	notes TEXT,
	start_hobbs REAL,
	end_hobbs REAL,
	completed_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Setup a sqlite-backed repository. The conflict and insert queries run
// unchanged on sqlite, which lets the overlap arithmetic be tested without a
// live Postgres.
func setupReservationRepo(t *testing.T) *ReservationRepository {
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// One connection, otherwise each connection sees its own :memory: db.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(reservationTestSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return NewReservationRepository(db)
}

// at returns a fixed-day timestamp, so tests read as clock times.
func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func mustReserve(t *testing.T, repo *ReservationRepository, aircraftID int64, start, end time.Time) *entities.Reservation {
	t.Helper()
	res := &entities.Reservation{
		AircraftID: aircraftID,
		UserID:     1,
		Title:      constants.CategoryPersonal,
		StartTime:  start,
		EndTime:    end,
	}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Failed to create reservation [%v, %v): %v", start, end, err)
	}
	if res.ID == 0 {
		t.Fatalf("Expected id to be assigned on insert")
	}
	return res
}

func TestReservationCreate_RejectsOverlap(t *testing.T) {
	repo := setupReservationRepo(t)
	mustReserve(t, repo, 1, at(10, 0), at(12, 0))

	overlapping := []struct {
		name       string
		start, end time.Time
	}{
		{"starts inside", at(11, 0), at(13, 0)},
		{"ends inside", at(9, 0), at(11, 0)},
		{"contained", at(10, 30), at(11, 0)},
		{"covers", at(9, 0), at(13, 0)},
		{"identical", at(10, 0), at(12, 0)},
	}

	for _, tc := range overlapping {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Create(context.Background(), &entities.Reservation{
				AircraftID: 1,
				UserID:     2,
				Title:      constants.CategoryShared,
				StartTime:  tc.start,
				EndTime:    tc.end,
			})
			if !errors.Is(err, common.ErrConflict) {
				t.Errorf("Expected conflict for [%v, %v), got %v", tc.start, tc.end, err)
			}
		})
	}
}

func TestReservationCreate_AllowsBackToBack(t *testing.T) {
	repo := setupReservationRepo(t)
	mustReserve(t, repo, 1, at(10, 0), at(12, 0))

	// [start, end) is half open: a slot may begin exactly when the
	// previous one ends, and end exactly when the next one begins.
	mustReserve(t, repo, 1, at(12, 0), at(14, 0))
	mustReserve(t, repo, 1, at(8, 0), at(10, 0))
}

func TestReservationCreate_OtherAircraftUnaffected(t *testing.T) {
	repo := setupReservationRepo(t)
	mustReserve(t, repo, 1, at(10, 0), at(12, 0))
	mustReserve(t, repo, 2, at(10, 0), at(12, 0))
}

func TestReservationUpdate_ExcludesOwnSlot(t *testing.T) {
	repo := setupReservationRepo(t)
	res := mustReserve(t, repo, 1, at(10, 0), at(12, 0))
	other := mustReserve(t, repo, 1, at(14, 0), at(16, 0))

	// Rewriting a reservation over its own window must not self-conflict.
	res.EndTime = at(11, 30)
	if err := repo.Update(context.Background(), res); err != nil {
		t.Fatalf("Expected self-overlapping update to succeed, got %v", err)
	}

	// Moving it onto another reservation still conflicts.
	res.StartTime = at(15, 0)
	res.EndTime = at(17, 0)
	err := repo.Update(context.Background(), res)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("Expected conflict when moving onto [%v, %v), got %v", other.StartTime, other.EndTime, err)
	}
}

func TestReservationUpdate_NotFound(t *testing.T) {
	repo := setupReservationRepo(t)

	err := repo.Update(context.Background(), &entities.Reservation{
		ID:         404,
		AircraftID: 1,
		Title:      constants.CategoryPersonal,
		StartTime:  at(10, 0),
		EndTime:    at(12, 0),
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestReservationGetByID_RoundTripAndNotFound(t *testing.T) {
	repo := setupReservationRepo(t)
	created := mustReserve(t, repo, 1, at(10, 0), at(12, 0))

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to fetch reservation: %v", err)
	}
	if !got.StartTime.Equal(at(10, 0)) || !got.EndTime.Equal(at(12, 0)) {
		t.Errorf("Expected [%v, %v), got [%v, %v)", at(10, 0), at(12, 0), got.StartTime, got.EndTime)
	}

	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

// A serialization failure can surface at COMMIT rather than at the statement,
// so the commit path runs through the same translation as statement errors.
func TestTranslatePgError(t *testing.T) {
	if err := translatePgError(&pq.Error{Code: "40001"}); !errors.Is(err, common.ErrConflict) {
		t.Errorf("Expected serialization failure to map to conflict, got %v", err)
	}
	if err := translatePgError(&pq.Error{Code: "23503"}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected foreign key violation to map to not found, got %v", err)
	}

	plain := errors.New("connection reset")
	if got := translatePgError(plain); got != plain {
		t.Errorf("Expected unknown errors to pass through, got %v", got)
	}
}
