package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	models "planescheduler/flightline/internal/models/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// List returns issues joined with aircraft tail number and reporter name,
// newest first, optionally narrowed to one aircraft.
func (r *IssueRepository) List(ctx context.Context, aircraftID *int64) ([]models.IssueDetail, error) {
	query := r.db.WithContext(ctx).
		Table("aircraft_issues AS i").
		Select("i.*, a.tail_number, u.username AS reported_by_name").
		Joins("JOIN aircraft a ON i.aircraft_id = a.id").
		Joins("JOIN users u ON i.reported_by = u.id").
		Order("i.created_at DESC")

	if aircraftID != nil {
		query = query.Where("i.aircraft_id = ?", *aircraftID)
	}

	var issues []models.IssueDetail
	if err := query.Scan(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id int64) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.WithContext(ctx).First(&issue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("issue %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// UpdateStatus sets the status and derives resolved_at from the target
// state on every call: entering resolved stamps it, any other target clears
// it, so re-opening a resolved issue resets the timestamp.
func (r *IssueRepository) UpdateStatus(ctx context.Context, id int64, status constants.IssueStatus) error {
	var resolvedAt *time.Time
	if status == constants.IssueResolved {
		now := time.Now()
		resolvedAt = &now
	}

	result := r.db.WithContext(ctx).Model(&models.Issue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("issue %w", common.ErrNotFound)
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Issue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("issue %w", common.ErrNotFound)
	}
	return nil
}
