package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	models "planescheduler/flightline/internal/models/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListAircraftIDs returns the aircraft the user is subscribed to.
func (r *SubscriptionRepository) ListAircraftIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("user_id = ?", userID).
		Pluck("aircraft_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Subscribe is idempotent: re-subscribing is a no-op.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, userID, aircraftID int64) error {
	sub := models.Subscription{UserID: userID, AircraftID: aircraftID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sub).Error
}

func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, userID, aircraftID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND aircraft_id = ?", userID, aircraftID).
		Delete(&models.Subscription{}).Error
}

// SubscriberEmails returns the addresses of every user subscribed to the
// aircraft, for reservation notifications.
func (r *SubscriptionRepository) SubscriberEmails(ctx context.Context, aircraftID int64) ([]string, error) {
	emails := []string{}
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("INNER JOIN user_aircraft_subscriptions s ON users.id = s.user_id").
		Where("s.aircraft_id = ?", aircraftID).
		Pluck("users.email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}
