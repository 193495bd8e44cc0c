package api

import (
	"encoding/json"
	"net/http"
	"time"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/services"
)

// ListAircraft handles GET /api/v1/aircraft
func ListAircraft(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraft, err := svc.List(r.Context())
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft fetched", aircraft)
	}
}

// GetAircraft handles GET /api/v1/aircraft/{id}
func GetAircraft(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		aircraft, err := svc.GetByID(r.Context(), id)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft fetched", aircraft)
	}
}

// CreateAircraft handles POST /api/v1/aircraft (admin only)
func CreateAircraft(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AircraftReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		aircraft, err := svc.Create(r.Context(), &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft created", aircraft, http.StatusCreated)
	}
}

// UpdateAircraft handles PUT /api/v1/aircraft/{id} (admin only)
func UpdateAircraft(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.AircraftReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		aircraft, err := svc.Update(r.Context(), id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft updated", aircraft)
	}
}

// DeleteAircraft handles DELETE /api/v1/aircraft/{id} (admin only)
func DeleteAircraft(svc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft deleted", dtos.MessageResponse{Message: "Aircraft deleted"})
	}
}
