package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	ctxutil "planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/services"
)

// ListReservations handles GET /api/v1/reservations with optional
// aircraft_id, start and end query filters.
func ListReservations(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var vErr common.ValidationError
		var filter repositories.ListFilter

		if raw := r.URL.Query().Get("aircraft_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				vErr.Add("aircraft_id", "must be a positive aircraft id")
			} else {
				filter.AircraftID = &id
			}
		}
		if raw := r.URL.Query().Get("start"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				vErr.Add("start", "must be an RFC 3339 timestamp")
			} else {
				filter.Start = &t
			}
		}
		if raw := r.URL.Query().Get("end"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				vErr.Add("end", "must be an RFC 3339 timestamp")
			} else {
				filter.End = &t
			}
		}
		if err := vErr.OrNil(); err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		reservations, err := svc.List(r.Context(), filter)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservations fetched", reservations)
	}
}

// GetReservation handles GET /api/v1/reservations/{id}
func GetReservation(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		reservation, err := svc.GetByID(r.Context(), id)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservation fetched", reservation)
	}
}

// CreateReservation handles POST /api/v1/reservations
func CreateReservation(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReservationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		reservation, err := svc.Create(r.Context(), claims, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservation created", reservation, http.StatusCreated)
	}
}

// UpdateReservation handles PUT /api/v1/reservations/{id}
func UpdateReservation(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.ReservationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		reservation, err := svc.Update(r.Context(), claims, id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservation updated", reservation)
	}
}

// CompleteReservation handles POST /api/v1/reservations/{id}/complete
func CompleteReservation(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.CompleteReservationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		reservation, err := svc.Complete(r.Context(), claims, id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservation completed", dtos.CompletionResponse{
			Message:    "Reservation completed",
			StartHobbs: *reservation.StartHobbs,
			EndHobbs:   *reservation.EndHobbs,
		})
	}
}

// DeleteReservation handles DELETE /api/v1/reservations/{id}
func DeleteReservation(svc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		if err := svc.Delete(r.Context(), claims, id); err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Reservation deleted", dtos.MessageResponse{Message: "Reservation deleted"})
	}
}
