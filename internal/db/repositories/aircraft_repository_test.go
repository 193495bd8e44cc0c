package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	models "planescheduler/flightline/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
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

	// The reservations table lives on the sqlx side in production; the
	// cascade delete test only needs the table to exist.
	if err := db.Exec(`CREATE TABLE reservations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		aircraft_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL
	)`).Error; err != nil {
		t.Fatalf("Failed to create reservations table: %v", err)
	}

	return db
}

func seedAircraft(t *testing.T, repo *AircraftRepository, tail string) *models.Aircraft {
	aircraft := &models.Aircraft{TailNumber: tail, Make: "Cessna", Model: "172S", LastHobbs: 1200.5}
	if err := repo.Create(context.Background(), aircraft); err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}
	return aircraft
}

func TestAircraftCreate_DuplicateTailNumber(t *testing.T) {
	repo := NewAircraftRepository(setupTestDB(t))
	seedAircraft(t, repo, "N12345")

	err := repo.Create(context.Background(), &models.Aircraft{TailNumber: "N12345", Make: "Piper", Model: "PA-28"})
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("Expected conflict for duplicate tail number, got %v", err)
	}
}

func TestAircraftUpdate_TailNumberTakenByOther(t *testing.T) {
	repo := NewAircraftRepository(setupTestDB(t))
	seedAircraft(t, repo, "N12345")
	second := seedAircraft(t, repo, "N67890")

	second.TailNumber = "N12345"
	err := repo.Update(context.Background(), second)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("Expected conflict, got %v", err)
	}
}

func TestAircraftUpdate_KeepingOwnTailNumber(t *testing.T) {
	repo := NewAircraftRepository(setupTestDB(t))
	aircraft := seedAircraft(t, repo, "N12345")

	aircraft.Model = "172N"
	if err := repo.Update(context.Background(), aircraft); err != nil {
		t.Fatalf("Updating without changing tail number must succeed, got %v", err)
	}

	got, err := repo.GetByID(context.Background(), aircraft.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Model != "172N" {
		t.Errorf("Expected model 172N, got %s", got.Model)
	}
}

func TestAircraftGetByID_NotFound(t *testing.T) {
	repo := NewAircraftRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestAircraftDelete_CascadesOwnedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAircraftRepository(db)
	aircraft := seedAircraft(t, repo, "N12345")

	user := models.User{Username: "tester", Email: "tester@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	issue := models.Issue{AircraftID: aircraft.ID, ReportedBy: user.ID, Title: "Flat tire", Severity: constants.SeverityLow, Status: constants.IssueOpen}
	if err := db.Create(&issue).Error; err != nil {
		t.Fatalf("Failed to seed issue: %v", err)
	}
	sub := models.Subscription{UserID: user.ID, AircraftID: aircraft.ID}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("Failed to seed subscription: %v", err)
	}
	if err := db.Exec(
		"INSERT INTO reservations (aircraft_id, user_id, title, start_time, end_time) VALUES (?, ?, 'Personal', '2026-09-01 10:00:00', '2026-09-01 12:00:00')",
		aircraft.ID, user.ID,
	).Error; err != nil {
		t.Fatalf("Failed to seed reservation: %v", err)
	}

	if err := repo.Delete(context.Background(), aircraft.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	db.Model(&models.Issue{}).Where("aircraft_id = ?", aircraft.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected issues cascade deleted, %d remain", count)
	}
	db.Model(&models.Subscription{}).Where("aircraft_id = ?", aircraft.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected subscriptions cascade deleted, %d remain", count)
	}
	db.Raw("SELECT COUNT(*) FROM reservations WHERE aircraft_id = ?", aircraft.ID).Scan(&count)
	if count != 0 {
		t.Errorf("Expected reservations cascade deleted, %d remain", count)
	}

	if _, err := repo.GetByID(context.Background(), aircraft.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected aircraft gone, got %v", err)
	}
}

func TestAircraftDelete_NotFound(t *testing.T) {
	repo := NewAircraftRepository(setupTestDB(t))

	if err := repo.Delete(context.Background(), 404); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}
