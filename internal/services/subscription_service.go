package services

import (
	"context"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/db/repositories"
)

// SubscriptionService lets users follow aircraft to receive reservation
// notifications.
type SubscriptionService struct {
	repo     *repositories.SubscriptionRepository
	aircraft AircraftDirectory
}

func NewSubscriptionService(repo *repositories.SubscriptionRepository, aircraft AircraftDirectory) *SubscriptionService {
	return &SubscriptionService{repo: repo, aircraft: aircraft}
}

func (s *SubscriptionService) ListForUser(ctx context.Context, claims auth.UserClaims) ([]int64, error) {
	return s.repo.ListAircraftIDs(ctx, claims.UserID())
}

func (s *SubscriptionService) Subscribe(ctx context.Context, claims auth.UserClaims, aircraftID int64) error {
	if _, err := s.aircraft.GetByID(ctx, aircraftID); err != nil {
		return err
	}
	return s.repo.Subscribe(ctx, claims.UserID(), aircraftID)
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, claims auth.UserClaims, aircraftID int64) error {
	return s.repo.Unsubscribe(ctx, claims.UserID(), aircraftID)
}
