package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	models "planescheduler/flightline/internal/models/gorm"
)

type AircraftRepository struct {
	db *gorm.DB
}

func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) List(ctx context.Context) ([]models.Aircraft, error) {
	var aircraft []models.Aircraft
	if err := r.db.WithContext(ctx).Order("tail_number").Find(&aircraft).Error; err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (r *AircraftRepository) GetByID(ctx context.Context, id int64) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).First(&aircraft, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("aircraft %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

func (r *AircraftRepository) Create(ctx context.Context, aircraft *models.Aircraft) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Aircraft{}).
		Where("tail_number = ?", aircraft.TailNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("tail number already exists: %w", common.ErrConflict)
	}

	return r.db.WithContext(ctx).Create(aircraft).Error
}

func (r *AircraftRepository) Update(ctx context.Context, aircraft *models.Aircraft) error {
	var existing models.Aircraft
	err := r.db.WithContext(ctx).First(&existing, aircraft.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("aircraft %w", common.ErrNotFound)
	}
	if err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Aircraft{}).
		Where("tail_number = ? AND id != ?", aircraft.TailNumber, aircraft.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("tail number already in use by another aircraft: %w", common.ErrConflict)
	}

	// last_hobbs is deliberately absent: the meter advances through the
	// reservation completion transaction, never through registry edits.
	return r.db.WithContext(ctx).Model(&existing).
		Select("tail_number", "make", "model", "year").
		Updates(map[string]interface{}{
			"tail_number": aircraft.TailNumber,
			"make":        aircraft.Make,
			"model":       aircraft.Model,
			"year":        aircraft.Year,
		}).Error
}

// Delete removes the aircraft and everything it owns: reservations, issues,
// and subscriptions go in the same transaction.
func (r *AircraftRepository) Delete(ctx context.Context, id int64) error {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).First(&aircraft, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("aircraft %w", common.ErrNotFound)
	}
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM reservations WHERE aircraft_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("aircraft_id = ?", id).Delete(&models.Issue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("aircraft_id = ?", id).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Aircraft{}, id).Error
	})
}
