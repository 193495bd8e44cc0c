package api

import (
	"encoding/json"
	"net/http"
	"time"

	ctxutil "planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/models/dtos"
	"planescheduler/flightline/internal/services"
)

// ListUsers handles GET /api/v1/users (admin only)
func ListUsers(svc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		users, err := svc.List(r.Context())
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Users fetched", users)
	}
}

// ListPendingUsers handles GET /api/v1/users/pending (admin only), the
// approval queue.
func ListPendingUsers(svc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		users, err := svc.ListPending(r.Context())
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Pending users fetched", users)
	}
}

// CreateUser handles POST /api/v1/users (admin only)
func CreateUser(svc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UserCreateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		user, err := svc.Create(r.Context(), &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "User created", user, http.StatusCreated)
	}
}

// UpdateUser handles PUT /api/v1/users/{id} (admin only)
func UpdateUser(svc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.UserUpdateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		user, err := svc.Update(r.Context(), claims, id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "User updated", user)
	}
}

// SetUserPrivileges handles PATCH /api/v1/users/{id}/privileges (admin only).
// This is also the approval endpoint for pending accounts.
func SetUserPrivileges(svc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		var req dtos.UserPrivilegesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		claims := ctxutil.GetUserClaims(r.Context())
		user, err := svc.SetPrivileges(r.Context(), claims, id, &req)
		if err != nil {
			common.RespondDomainError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "User privileges updated", user)
	}
}

// DeleteUser handles DELETE /api/v1/users/{id} (admin only)
func DeleteUser(svc *services.UserService) http.HandlerFunc {
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

		common.RespondSuccess(w, initTime, "User deleted", dtos.MessageResponse{Message: "User deleted"})
	}
}
