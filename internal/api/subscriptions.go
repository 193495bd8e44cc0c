package api

import (
	"net/http"
	"time"

	ctxutil "planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/services"
)

// ListSubscriptions handles GET /api/v1/subscriptions for the current user.
func ListSubscriptions(svc *services.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := ctxutil.GetUserClaims(r.Context())
		ids, err := svc.ListForUser(r.Context(), claims)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Subscriptions fetched", ids)
	}
}

// Subscribe handles POST /api/v1/subscriptions/{aircraftId}
func Subscribe(svc *services.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := routeID(r, "aircraftId")
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		if err := svc.Subscribe(r.Context(), claims, id); err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Subscribed", dtos.SubscriptionResponse{
			Subscribed: true,
			AircraftID: id,
		})
	}
}

// Unsubscribe handles DELETE /api/v1/subscriptions/{aircraftId}
func Unsubscribe(svc *services.SubscriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := routeID(r, "aircraftId")
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		if err := svc.Unsubscribe(r.Context(), claims, id); err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Unsubscribed", dtos.SubscriptionResponse{
			Subscribed: false,
			AircraftID: id,
		})
	}
}
