package services

import (
	"context"
	"strings"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/metrics"
	"planescheduler/flightline/internal/models/dtos"
	models "planescheduler/flightline/internal/models/gorm"
)

// IssueService manages maintenance issue reports. Any authenticated user may
// report; status changes and deletion are maintainer or admin actions.
type IssueService struct {
	repo     *repositories.IssueRepository
	aircraft AircraftDirectory
	metrics  *metrics.MetricsRegistry
}

func NewIssueService(repo *repositories.IssueRepository, aircraft AircraftDirectory, reg *metrics.MetricsRegistry) *IssueService {
	return &IssueService{repo: repo, aircraft: aircraft, metrics: reg}
}

func (s *IssueService) List(ctx context.Context, aircraftID *int64) ([]models.IssueDetail, error) {
	return s.repo.List(ctx, aircraftID)
}

func (s *IssueService) Create(ctx context.Context, claims auth.UserClaims, req *dtos.IssueReq) (*models.Issue, error) {
	var vErr common.ValidationError
	if req.AircraftID <= 0 {
		vErr.Add("aircraft_id", "must be a positive aircraft id")
	}
	if strings.TrimSpace(req.Title) == "" {
		vErr.Add("title", "is required")
	}
	if !constants.IssueSeverity(req.Severity).Valid() {
		vErr.Add("severity", "must be one of low, medium, high, grounding")
	}
	if err := vErr.OrNil(); err != nil {
		return nil, err
	}

	// Surfaces NotFound before insert; gorm carries no FK guarantee here.
	if _, err := s.aircraft.GetByID(ctx, req.AircraftID); err != nil {
		return nil, err
	}

	issue := &models.Issue{
		AircraftID:  req.AircraftID,
		ReportedBy:  claims.UserID(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Severity:    constants.IssueSeverity(req.Severity),
		Status:      constants.IssueOpen,
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.metrics.IssuesReportedTotal.WithLabelValues(req.Severity).Inc()
	return issue, nil
}

// UpdateStatus moves an issue through open, in_progress, resolved.
func (s *IssueService) UpdateStatus(ctx context.Context, claims auth.UserClaims, id int64, req *dtos.IssueStatusReq) (*models.Issue, error) {
	if !auth.Can(claims, auth.OpIssueStatus, 0) {
		return nil, common.ErrForbidden
	}

	status := constants.IssueStatus(req.Status)
	if !status.Valid() {
		var vErr common.ValidationError
		vErr.Add("status", "must be one of open, in_progress, resolved")
		return nil, &vErr
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *IssueService) Delete(ctx context.Context, claims auth.UserClaims, id int64) error {
	if !auth.Can(claims, auth.OpIssueDelete, 0) {
		return common.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
