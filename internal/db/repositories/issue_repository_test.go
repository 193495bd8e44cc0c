package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	models "planescheduler/flightline/internal/models/gorm"
)

func seedIssueFixtures(t *testing.T, db *gorm.DB) (*models.Aircraft, *models.User) {
	aircraft := &models.Aircraft{TailNumber: "N12345", Make: "Cessna", Model: "172S"}
	if err := db.Create(aircraft).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}
	user := &models.User{Username: "reporter", Email: "reporter@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return aircraft, user
}

func TestIssueUpdateStatus_ResolvedStampsTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	aircraft, user := seedIssueFixtures(t, db)

	issue := &models.Issue{
		AircraftID: aircraft.ID,
		ReportedBy: user.ID,
		Title:      "Alternator belt fraying",
		Severity:   constants.SeverityMedium,
		Status:     constants.IssueOpen,
	}
	if err := repo.Create(context.Background(), issue); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), issue.ID, constants.IssueResolved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := repo.GetByID(context.Background(), issue.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != constants.IssueResolved {
		t.Errorf("Expected resolved, got %s", got.Status)
	}
	if got.ResolvedAt == nil {
		t.Error("Expected resolved_at to be stamped")
	}

	// Re-opening clears the timestamp.
	if err := repo.UpdateStatus(context.Background(), issue.ID, constants.IssueInProgress); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	got, _ = repo.GetByID(context.Background(), issue.ID)
	if got.Status != constants.IssueInProgress {
		t.Errorf("Expected in_progress, got %s", got.Status)
	}
	if got.ResolvedAt != nil {
		t.Error("Expected resolved_at cleared on re-open")
	}
}

func TestIssueUpdateStatus_NotFound(t *testing.T) {
	repo := NewIssueRepository(setupTestDB(t))

	err := repo.UpdateStatus(context.Background(), 404, constants.IssueResolved)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestIssueList_JoinsAircraftAndReporter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	aircraft, user := seedIssueFixtures(t, db)

	issue := &models.Issue{
		AircraftID: aircraft.ID,
		ReportedBy: user.ID,
		Title:      "Nav light out",
		Severity:   constants.SeverityLow,
		Status:     constants.IssueOpen,
	}
	if err := repo.Create(context.Background(), issue); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	issues, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(issues))
	}
	if issues[0].TailNumber != "N12345" {
		t.Errorf("Expected joined tail number, got %q", issues[0].TailNumber)
	}
	if issues[0].ReportedByName != "reporter" {
		t.Errorf("Expected joined reporter name, got %q", issues[0].ReportedByName)
	}
}

func TestIssueList_FilterByAircraft(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	aircraft, user := seedIssueFixtures(t, db)

	other := &models.Aircraft{TailNumber: "N67890", Make: "Piper", Model: "PA-28"}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}

	for _, aID := range []int64{aircraft.ID, other.ID} {
		issue := &models.Issue{AircraftID: aID, ReportedBy: user.ID, Title: "Squawk", Severity: constants.SeverityLow, Status: constants.IssueOpen}
		if err := repo.Create(context.Background(), issue); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	issues, err := repo.List(context.Background(), &other.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(issues) != 1 || issues[0].AircraftID != other.ID {
		t.Errorf("Expected only issues for aircraft %d, got %+v", other.ID, issues)
	}
}
