package auth

import "planescheduler/flightline/internal/constants"

// UserClaims is the per-request identity the service authorizes against.
// Authentication itself happens upstream (session front end or token
// issuer); this interface only reports who the caller is.
type UserClaims interface {
	UserID() int64
	Username() string
	Privilege() constants.Privilege
	Source() string
}

// SessionClaims is an identity backed by a Redis session cookie.
type SessionClaims struct {
	ID             int64
	Name           string
	PrivilegeValue constants.Privilege
}

func (c *SessionClaims) UserID() int64                  { return c.ID }
func (c *SessionClaims) Username() string               { return c.Name }
func (c *SessionClaims) Privilege() constants.Privilege { return c.PrivilegeValue }
func (c *SessionClaims) Source() string                 { return "SESSION" }

// TokenClaims is an identity backed by a bearer JWT (bots, cron clients).
type TokenClaims struct {
	ID             int64
	Name           string
	PrivilegeValue constants.Privilege
}

func (c *TokenClaims) UserID() int64                  { return c.ID }
func (c *TokenClaims) Username() string               { return c.Name }
func (c *TokenClaims) Privilege() constants.Privilege { return c.PrivilegeValue }
func (c *TokenClaims) Source() string                 { return "JWT" }
