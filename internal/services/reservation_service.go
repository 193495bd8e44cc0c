package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/logging"
	"planescheduler/flightline/internal/metrics"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/models/entities"
	models "planescheduler/flightline/internal/models/gorm"
)

// ReservationStore is the persistence surface the reservation service needs.
type ReservationStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Reservation, error)
	Create(ctx context.Context, res *entities.Reservation) error
	Update(ctx context.Context, res *entities.Reservation) error
	Complete(ctx context.Context, id int64, startHobbs, endHobbs float64) (*entities.Reservation, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repositories.ListFilter) ([]entities.ReservationDetail, error)
	ListCompletedUsage(ctx context.Context, start, end time.Time, aircraftID *int64) ([]entities.UsageRow, error)
}

// AircraftDirectory is the slice of the aircraft service the reservation
// flow needs: registry lookups and cache invalidation after completion.
type AircraftDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Aircraft, error)
	InvalidateCache(id int64)
}

// SubscriberSource resolves the notification recipients for an aircraft.
type SubscriberSource interface {
	SubscriberEmails(ctx context.Context, aircraftID int64) ([]string, error)
}

// BookingNotifier delivers reservation announcements.
type BookingNotifier interface {
	ReservationBooked(res *entities.ReservationDetail, recipients []string)
}

type ReservationService struct {
	store       ReservationStore
	aircraft    AircraftDirectory
	subscribers SubscriberSource
	notifier    BookingNotifier
	metrics     *metrics.MetricsRegistry
}

func NewReservationService(
	store ReservationStore,
	aircraft AircraftDirectory,
	subscribers SubscriberSource,
	notifier BookingNotifier,
	reg *metrics.MetricsRegistry,
) *ReservationService {
	return &ReservationService{
		store:       store,
		aircraft:    aircraft,
		subscribers: subscribers,
		notifier:    notifier,
		metrics:     reg,
	}
}

// validateReservationReq checks every field and reports all failures at once.
func validateReservationReq(req *dtos.ReservationReq) (time.Time, time.Time, error) {
	var vErr common.ValidationError
	var start, end time.Time
	var err error

	if req.AircraftID <= 0 {
		vErr.Add("aircraft_id", "must be a positive aircraft id")
	}
	if !constants.ReservationCategory(req.Title).Valid() {
		vErr.Add("title", "must be one of Personal, Shared, Maintenance")
	}

	if start, err = time.Parse(time.RFC3339, req.StartTime); err != nil {
		vErr.Add("start_time", "must be an RFC 3339 timestamp")
	}
	if end, err = time.Parse(time.RFC3339, req.EndTime); err != nil {
		vErr.Add("end_time", "must be an RFC 3339 timestamp")
	}
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		vErr.Add("end_time", "must be after start_time")
	}

	return start, end, vErr.OrNil()
}

// Create books a new reservation for the authenticated user and notifies the
// aircraft's subscribers in the background.
func (s *ReservationService) Create(ctx context.Context, claims auth.UserClaims, req *dtos.ReservationReq) (*entities.Reservation, error) {
	start, end, err := validateReservationReq(req)
	if err != nil {
		return nil, err
	}

	res := &entities.Reservation{
		AircraftID: req.AircraftID,
		UserID:     claims.UserID(),
		Title:      constants.ReservationCategory(req.Title),
		StartTime:  start.UTC(),
		EndTime:    end.UTC(),
		Notes:      req.Notes,
	}

	if err := s.store.Create(ctx, res); err != nil {
		if errors.Is(err, common.ErrConflict) {
			s.metrics.ReservationConflictsTotal.Inc()
		}
		return nil, err
	}

	s.metrics.ReservationsCreatedTotal.Inc()
	go s.notifySubscribers(res, claims.Username())

	return res, nil
}

// Update rewrites the schedulable fields of an uncompleted reservation. Only
// the owner or an admin may edit.
func (s *ReservationService) Update(ctx context.Context, claims auth.UserClaims, id int64, req *dtos.ReservationReq) (*entities.Reservation, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.Can(claims, auth.OpReservationEdit, existing.UserID) {
		return nil, common.ErrForbidden
	}
	if existing.Completed() {
		return nil, fmt.Errorf("completed reservations cannot be edited: %w", common.ErrInvalidState)
	}

	start, end, err := validateReservationReq(req)
	if err != nil {
		return nil, err
	}

	existing.AircraftID = req.AircraftID
	existing.Title = constants.ReservationCategory(req.Title)
	existing.StartTime = start.UTC()
	existing.EndTime = end.UTC()
	existing.Notes = req.Notes

	if err := s.store.Update(ctx, existing); err != nil {
		if errors.Is(err, common.ErrConflict) {
			s.metrics.ReservationConflictsTotal.Inc()
		}
		return nil, err
	}
	return existing, nil
}

// Complete records the hobbs readings and closes the reservation. Owner,
// admin, or maintainer may complete; hobbs values are validated before any
// write happens.
func (s *ReservationService) Complete(ctx context.Context, claims auth.UserClaims, id int64, req *dtos.CompleteReservationReq) (*entities.Reservation, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.Can(claims, auth.OpReservationComplete, existing.UserID) {
		return nil, common.ErrForbidden
	}

	var vErr common.ValidationError
	if req.StartHobbs == nil {
		vErr.Add("start_hobbs", "is required")
	} else if *req.StartHobbs < 0 {
		vErr.Add("start_hobbs", "must not be negative")
	}
	if req.EndHobbs == nil {
		vErr.Add("end_hobbs", "is required")
	}
	if req.StartHobbs != nil && req.EndHobbs != nil && *req.EndHobbs < *req.StartHobbs {
		vErr.Add("end_hobbs", "must be greater than or equal to start_hobbs")
	}
	if err := vErr.OrNil(); err != nil {
		return nil, err
	}

	completed, err := s.store.Complete(ctx, id, *req.StartHobbs, *req.EndHobbs)
	if err != nil {
		return nil, err
	}

	s.metrics.ReservationsCompletedTotal.Inc()
	s.aircraft.InvalidateCache(completed.AircraftID)
	return completed, nil
}

// Delete removes a reservation. Only the owner or an admin may delete.
// Completed reservations can be deleted too; the aircraft meter keeps the
// value their completion recorded.
func (s *ReservationService) Delete(ctx context.Context, claims auth.UserClaims, id int64) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.Can(claims, auth.OpReservationDelete, existing.UserID) {
		return common.ErrForbidden
	}

	return s.store.Delete(ctx, id)
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*entities.Reservation, error) {
	return s.store.GetByID(ctx, id)
}

// List returns the calendar view. Any authenticated user sees all
// reservations; filters narrow by aircraft and time window.
func (s *ReservationService) List(ctx context.Context, filter repositories.ListFilter) ([]entities.ReservationDetail, error) {
	return s.store.List(ctx, filter)
}

// notifySubscribers resolves the subscriber list and sends the booking email.
// Runs in its own goroutine with a fresh context; failures never reach the
// booking response.
func (s *ReservationService) notifySubscribers(res *entities.Reservation, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	recipients, err := s.subscribers.SubscriberEmails(ctx, res.AircraftID)
	if err != nil {
		logging.Error("failed to load subscribers for notification",
			"aircraft_id", res.AircraftID, "error", err)
		return
	}
	if len(recipients) == 0 {
		return
	}

	detail := &entities.ReservationDetail{Reservation: *res, Username: username}
	if aircraft, err := s.aircraft.GetByID(ctx, res.AircraftID); err == nil {
		detail.TailNumber = aircraft.TailNumber
		detail.Make = aircraft.Make
		detail.Model = aircraft.Model
	}

	s.notifier.ReservationBooked(detail, recipients)
}
