package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/models/dtos"
	models "planescheduler/flightline/internal/models/gorm"
)

const aircraftCacheTTL = 5 * time.Minute

// AircraftService fronts the aircraft registry with an in-memory cache.
// Reads hit the cache; every write invalidates the affected entries.
type AircraftService struct {
	repo  *repositories.AircraftRepository
	cache *common.CacheService
}

func NewAircraftService(repo *repositories.AircraftRepository, cache *common.CacheService) *AircraftService {
	return &AircraftService{repo: repo, cache: cache}
}

func (s *AircraftService) List(ctx context.Context) ([]models.Aircraft, error) {
	val, err := s.cache.GetOrSet(constants.CachePrefixAircraftList, aircraftCacheTTL, func() (any, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.([]models.Aircraft), nil
}

func (s *AircraftService) GetByID(ctx context.Context, id int64) (*models.Aircraft, error) {
	key := constants.CachePrefixAircraft + strconv.FormatInt(id, 10)
	val, err := s.cache.GetOrSet(key, aircraftCacheTTL, func() (any, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*models.Aircraft), nil
}

func validateAircraftReq(req *dtos.AircraftReq) error {
	var vErr common.ValidationError

	if strings.TrimSpace(req.TailNumber) == "" {
		vErr.Add("tail_number", "is required")
	}
	if strings.TrimSpace(req.Make) == "" {
		vErr.Add("make", "is required")
	}
	if strings.TrimSpace(req.Model) == "" {
		vErr.Add("model", "is required")
	}
	if req.LastHobbs != nil && *req.LastHobbs < 0 {
		vErr.Add("last_hobbs", "must not be negative")
	}

	return vErr.OrNil()
}

func (s *AircraftService) Create(ctx context.Context, req *dtos.AircraftReq) (*models.Aircraft, error) {
	if err := validateAircraftReq(req); err != nil {
		return nil, err
	}

	aircraft := &models.Aircraft{
		TailNumber: strings.ToUpper(strings.TrimSpace(req.TailNumber)),
		Make:       strings.TrimSpace(req.Make),
		Model:      strings.TrimSpace(req.Model),
		Year:       req.Year,
	}
	if req.LastHobbs != nil {
		aircraft.LastHobbs = *req.LastHobbs
	}

	if err := s.repo.Create(ctx, aircraft); err != nil {
		return nil, err
	}

	s.cache.Delete(constants.CachePrefixAircraftList)
	return aircraft, nil
}

func (s *AircraftService) Update(ctx context.Context, id int64, req *dtos.AircraftReq) (*models.Aircraft, error) {
	if err := validateAircraftReq(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// last_hobbs is only seeded at creation and advanced by reservation
	// completion. Edits never touch the meter.
	aircraft := &models.Aircraft{
		ID:         id,
		TailNumber: strings.ToUpper(strings.TrimSpace(req.TailNumber)),
		Make:       strings.TrimSpace(req.Make),
		Model:      strings.TrimSpace(req.Model),
		Year:       req.Year,
		LastHobbs:  existing.LastHobbs,
	}

	if err := s.repo.Update(ctx, aircraft); err != nil {
		return nil, err
	}

	s.InvalidateCache(id)
	return aircraft, nil
}

// Delete removes the aircraft and all of its reservations, issues and
// subscriptions.
func (s *AircraftService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(id)
	return nil
}

// InvalidateCache drops the cached entry for one aircraft plus the list view.
func (s *AircraftService) InvalidateCache(id int64) {
	s.cache.Delete(fmt.Sprintf("%s%d", constants.CachePrefixAircraft, id))
	s.cache.Delete(constants.CachePrefixAircraftList)
}
