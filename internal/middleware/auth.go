package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"planescheduler/flightline/internal/auth"
	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/constants"
)

// SessionCookieName is set by the external login front end.
const SessionCookieName = "flightline_session"

// AuthMiddleware builds the request identity from either the session cookie
// or a bearer JWT. It authenticates nothing itself beyond signature and
// expiry checks; privilege data comes from the session or token claims.
func AuthMiddleware(sessionSvc *common.SessionService, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			var claims auth.UserClaims

			authHeader := r.Header.Get("Authorization")
			cookie, cookieErr := r.Cookie(SessionCookieName)

			switch {
			case cookieErr == nil && cookie.Value != "":
				session, err := sessionSvc.GetSession(r.Context(), cookie.Value)
				if err != nil {
					if errors.Is(err, common.ErrSessionNotFound) {
						http.Error(w, "Not authenticated", http.StatusUnauthorized)
					} else {
						http.Error(w, "Session lookup failed", http.StatusInternalServerError)
					}
					return
				}
				claims = &auth.SessionClaims{
					ID:             session.UserID,
					Name:           session.Username,
					PrivilegeValue: session.Privilege,
				}

			case strings.HasPrefix(authHeader, "Bearer "):
				tokenClaims, err := parseBearerToken(strings.TrimPrefix(authHeader, "Bearer "), jwtSecret)
				if err != nil {
					http.Error(w, "Not authenticated", http.StatusUnauthorized)
					return
				}
				claims = tokenClaims

			default:
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseBearerToken(tokenString string, secret []byte) (*auth.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := (*mapClaims)["user_id"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid user_id claim")
	}

	username, _ := (*mapClaims)["username"].(string)

	privilege, ok := (*mapClaims)["privileges"].(string)
	if !ok || !constants.Privilege(privilege).Valid() {
		return nil, errors.New("missing or invalid privileges claim")
	}

	return &auth.TokenClaims{
		ID:             int64(userID),
		Name:           username,
		PrivilegeValue: constants.Privilege(privilege),
	}, nil
}
