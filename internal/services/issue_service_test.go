package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/models/dtos"
	models "planescheduler/flightline/internal/models/gorm"
)

func newIssueService(t *testing.T) (*IssueService, *gorm.DB) {
	db := setupServiceDB(t)
	svc := NewIssueService(repositories.NewIssueRepository(db), &mockAircraftDirectory{}, testMetrics)
	return svc, db
}

func seedIssueUser(t *testing.T, db *gorm.DB) *models.User {
	user := &models.User{Username: "reporter", Email: "reporter@example.com", Password: "x", Privileges: constants.PrivilegeUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestIssueCreate_Success(t *testing.T) {
	svc, db := newIssueService(t)
	user := seedIssueUser(t, db)

	desc := "Oil pressure reads low on climbout"
	issue, err := svc.Create(context.Background(), userClaims(user.ID), &dtos.IssueReq{
		AircraftID:  1,
		Title:       "Low oil pressure",
		Description: &desc,
		Severity:    "high",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if issue.Status != constants.IssueOpen {
		t.Errorf("New issues must start open, got %s", issue.Status)
	}
	if issue.ReportedBy != user.ID {
		t.Errorf("Expected reporter %d, got %d", user.ID, issue.ReportedBy)
	}
}

func TestIssueCreate_InvalidSeverity(t *testing.T) {
	svc, _ := newIssueService(t)

	_, err := svc.Create(context.Background(), userClaims(1), &dtos.IssueReq{
		AircraftID: 1,
		Title:      "Something",
		Severity:   "catastrophic",
	})

	var vErr *common.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

func TestIssueCreate_UnknownAircraft(t *testing.T) {
	db := setupServiceDB(t)
	aircraft := &mockAircraftDirectory{
		getByIDFunc: func(ctx context.Context, id int64) (*models.Aircraft, error) {
			return nil, common.ErrNotFound
		},
	}
	svc := NewIssueService(repositories.NewIssueRepository(db), aircraft, testMetrics)

	_, err := svc.Create(context.Background(), userClaims(1), &dtos.IssueReq{
		AircraftID: 404,
		Title:      "Ghost squawk",
		Severity:   "low",
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected not found for unknown aircraft, got %v", err)
	}
}

func TestIssueUpdateStatus_RegularUserForbidden(t *testing.T) {
	svc, _ := newIssueService(t)

	_, err := svc.UpdateStatus(context.Background(), userClaims(1), 1, &dtos.IssueStatusReq{Status: "resolved"})
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Expected forbidden for regular user, got %v", err)
	}
}

func TestIssueUpdateStatus_MaintainerResolves(t *testing.T) {
	svc, db := newIssueService(t)
	user := seedIssueUser(t, db)

	issue, err := svc.Create(context.Background(), userClaims(user.ID), &dtos.IssueReq{
		AircraftID: 1,
		Title:      "Brake wear",
		Severity:   "medium",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), maintainerClaims(), issue.ID, &dtos.IssueStatusReq{Status: "resolved"})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != constants.IssueResolved {
		t.Errorf("Expected resolved, got %s", updated.Status)
	}
	if updated.ResolvedAt == nil {
		t.Error("Expected resolved_at to be stamped")
	}
}

func TestIssueDelete_RegularUserForbidden(t *testing.T) {
	svc, _ := newIssueService(t)

	err := svc.Delete(context.Background(), userClaims(1), 1)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Expected forbidden for regular user, got %v", err)
	}
}
