package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	models "planescheduler/flightline/internal/models/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ListPending(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("privileges = ?", constants.PrivilegePending).
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("username or email already in use: %w", common.ErrConflict)
	}

	return r.db.WithContext(ctx).Create(user).Error
}

// Update overwrites username, email and privileges; the password column is
// touched only when a new hash is supplied.
func (r *UserRepository) Update(ctx context.Context, user *models.User, newPassword *string) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id != ?", user.Username, user.Email, user.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("username or email already in use: %w", common.ErrConflict)
	}

	updates := map[string]interface{}{
		"username":   user.Username,
		"email":      user.Email,
		"privileges": user.Privileges,
	}
	if newPassword != nil {
		updates["password"] = *newPassword
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %w", common.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePrivileges(ctx context.Context, id int64, privileges constants.Privilege) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("privileges", privileges)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %w", common.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %w", common.ErrNotFound)
	}
	return nil
}
