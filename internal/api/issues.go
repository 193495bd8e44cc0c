package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	ctxutil "planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/services"
)

// ListIssues handles GET /api/v1/issues with an optional aircraft_id filter.
func ListIssues(svc *services.IssueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var aircraftID *int64
		if raw := r.URL.Query().Get("aircraft_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				var vErr common.ValidationError
				vErr.Add("aircraft_id", "must be a positive aircraft id")
				common.RespondDomainError(w, initTime, &vErr)
				return
			}
			aircraftID = &id
		}

		issues, err := svc.List(r.Context(), aircraftID)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Issues fetched", issues)
	}
}

// CreateIssue handles POST /api/v1/issues
func CreateIssue(svc *services.IssueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.IssueReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		issue, err := svc.Create(r.Context(), claims, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Issue reported", issue, http.StatusCreated)
	}
}

// UpdateIssueStatus handles PATCH /api/v1/issues/{id}/status
func UpdateIssueStatus(svc *services.IssueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.IssueStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		issue, err := svc.UpdateStatus(r.Context(), claims, id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Issue status updated", issue)
	}
}

// DeleteIssue handles DELETE /api/v1/issues/{id}
func DeleteIssue(svc *services.IssueService) http.HandlerFunc {
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

		common.RespondSuccess(w, initTime, "Issue deleted", dtos.MessageResponse{Message: "Issue deleted"})
	}
}
