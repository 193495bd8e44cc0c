package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/models/dtos"
	models "planescheduler/flightline/internal/models/gorm"
)

// Setup test database
func setupServiceDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Aircraft{},
		&models.Issue{},
		&models.Subscription{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.User {
	admin := &models.User{Username: "boss", Email: "boss@example.com", Password: "x", Privileges: constants.PrivilegeAdmin}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
	return admin
}

func adminClaimsFor(user *models.User) auth.UserClaims {
	return &auth.SessionClaims{ID: user.ID, Name: user.Username, PrivilegeValue: constants.PrivilegeAdmin}
}

func TestUserCreate_HashesPassword(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user, err := svc.Create(context.Background(), &dtos.UserCreateReq{
		Username: "pilot",
		Email:    "pilot@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if user.Password == "hunter2hunter2" {
		t.Error("Password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2hunter2")); err != nil {
		t.Errorf("Stored hash does not match the password: %v", err)
	}
	if user.Privileges != constants.PrivilegePending {
		t.Errorf("New accounts default to pending, got %s", user.Privileges)
	}
}

func TestUserCreate_ValidationAccumulates(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Create(context.Background(), &dtos.UserCreateReq{
		Username:   "",
		Email:      "not-an-email",
		Password:   "short",
		Privileges: "wizard",
	})

	var vErr *common.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 4 {
		t.Errorf("Expected 4 field errors, got %d: %v", len(vErr.Fields), vErr.Fields)
	}
}

func TestUserSetPrivileges_ApprovesPendingAccount(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	admin := seedAdmin(t, db)

	pending := &models.User{Username: "newbie", Email: "newbie@example.com", Password: "x", Privileges: constants.PrivilegePending}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	user, err := svc.SetPrivileges(context.Background(), adminClaimsFor(admin), pending.ID, &dtos.UserPrivilegesReq{Privileges: "user"})
	if err != nil {
		t.Fatalf("SetPrivileges failed: %v", err)
	}
	if user.Privileges != constants.PrivilegeUser {
		t.Errorf("Expected user privilege, got %s", user.Privileges)
	}
}

func TestUserSetPrivileges_SelfDemotionBlocked(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	admin := seedAdmin(t, db)

	_, err := svc.SetPrivileges(context.Background(), adminClaimsFor(admin), admin.ID, &dtos.UserPrivilegesReq{Privileges: "user"})
	if !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("Expected invalid state for self-demotion, got %v", err)
	}
}

func TestUserDelete_SelfDeletionBlocked(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	admin := seedAdmin(t, db)

	err := svc.Delete(context.Background(), adminClaimsFor(admin), admin.ID)
	if !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("Expected invalid state for self-deletion, got %v", err)
	}
}

func TestUserDelete_OtherAccount(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	admin := seedAdmin(t, db)

	victim := &models.User{Username: "leaver", Email: "leaver@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(victim).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	if err := svc.Delete(context.Background(), adminClaimsFor(admin), victim.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}
