package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/models/dtos"
	models "planescheduler/flightline/internal/models/gorm"
)

const minPasswordLength = 8

// UserService is the admin-only membership surface: creating accounts,
// approving pending signups, changing privileges, and removal.
type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ListPending(ctx context.Context) ([]models.User, error) {
	return s.repo.ListPending(ctx)
}

func validateIdentity(username, email string, vErr *common.ValidationError) {
	if strings.TrimSpace(username) == "" {
		vErr.Add("username", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		vErr.Add("email", "must be a valid email address")
	}
}

func (s *UserService) Create(ctx context.Context, req *dtos.UserCreateReq) (*models.User, error) {
	var vErr common.ValidationError
	validateIdentity(req.Username, req.Email, &vErr)
	if len(req.Password) < minPasswordLength {
		vErr.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	privileges := constants.Privilege(req.Privileges)
	if req.Privileges == "" {
		privileges = constants.PrivilegePending
	} else if !privileges.Valid() {
		vErr.Add("privileges", "must be one of pending, user, maintainer, admin")
	}
	if err := vErr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:   strings.TrimSpace(req.Username),
		Email:      strings.TrimSpace(req.Email),
		Password:   string(hash),
		Privileges: privileges,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, claims auth.UserClaims, id int64, req *dtos.UserUpdateReq) (*models.User, error) {
	var vErr common.ValidationError
	validateIdentity(req.Username, req.Email, &vErr)
	privileges := constants.Privilege(req.Privileges)
	if !privileges.Valid() {
		vErr.Add("privileges", "must be one of pending, user, maintainer, admin")
	}
	if req.Password != nil && len(*req.Password) < minPasswordLength {
		vErr.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if err := vErr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An admin cannot strip their own admin access.
	if claims.UserID() == id && existing.Privileges == constants.PrivilegeAdmin && privileges != constants.PrivilegeAdmin {
		return nil, fmt.Errorf("cannot remove your own admin privileges: %w", common.ErrInvalidState)
	}

	existing.Username = strings.TrimSpace(req.Username)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Privileges = privileges

	var newHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		newHash = &h
	}

	if err := s.repo.Update(ctx, existing, newHash); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetPrivileges is the approval path: it promotes a pending account (or any
// account) to the given level.
func (s *UserService) SetPrivileges(ctx context.Context, claims auth.UserClaims, id int64, req *dtos.UserPrivilegesReq) (*models.User, error) {
	privileges := constants.Privilege(req.Privileges)
	if !privileges.Valid() {
		var vErr common.ValidationError
		vErr.Add("privileges", "must be one of pending, user, maintainer, admin")
		return nil, &vErr
	}

	if claims.UserID() == id && privileges != constants.PrivilegeAdmin {
		return nil, fmt.Errorf("cannot remove your own admin privileges: %w", common.ErrInvalidState)
	}

	if err := s.repo.UpdatePrivileges(ctx, id, privileges); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, claims auth.UserClaims, id int64) error {
	if claims.UserID() == id {
		return fmt.Errorf("cannot delete your own account: %w", common.ErrInvalidState)
	}
	return s.repo.Delete(ctx, id)
}
