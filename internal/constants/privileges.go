package constants

import (
	"database/sql/driver"
	"fmt"
)

// Privilege mirrors the users.privileges column
type Privilege string

const (
	PrivilegePending    Privilege = "pending"
	PrivilegeUser       Privilege = "user"
	PrivilegeMaintainer Privilege = "maintainer"
	PrivilegeAdmin      Privilege = "admin"
)

// Stringer – convenient for fmt / logs
func (p Privilege) String() string { return string(p) }

// Valid reports whether p is one of the known privilege levels.
func (p Privilege) Valid() bool {
	switch p {
	case PrivilegePending, PrivilegeUser, PrivilegeMaintainer, PrivilegeAdmin:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (p *Privilege) Scan(src interface{}) error {
	if src == nil {
		*p = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*p = Privilege(v)
	case []byte:
		*p = Privilege(v)
	default:
		return fmt.Errorf("Privilege: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (p Privilege) Value() (driver.Value, error) { return string(p), nil }
