package middleware

import (
	"net/http"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/constants"
)

// IsMaintainerMiddleware passes maintainers and admins.
func IsMaintainerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			switch claims.Privilege() {
			case constants.PrivilegeAdmin, constants.PrivilegeMaintainer:
				next.ServeHTTP(w, r)
			default:
				http.Error(w, "Insufficient privileges", http.StatusForbidden)
			}
		})
	}
}
