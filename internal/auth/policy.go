package auth

import "planescheduler/flightline/internal/constants"

// Operation names a privileged action on a resource.
type Operation string

const (
	OpReservationEdit     Operation = "reservation.edit"
	OpReservationComplete Operation = "reservation.complete"
	OpReservationDelete   Operation = "reservation.delete"
	OpIssueStatus         Operation = "issue.status"
	OpIssueDelete         Operation = "issue.delete"
	OpAircraftManage      Operation = "aircraft.manage"
	OpUserManage          Operation = "user.manage"
	OpUsageReport         Operation = "report.usage"
)

// Rule states who may perform an operation: the resource owner (when the
// operation has one) and/or holders of the listed privilege levels.
type Rule struct {
	Owner      bool
	Privileges []constants.Privilege
}

// policy is the single authorization table. The edit/delete actor set
// {owner, admin} is deliberately narrower than the completion set
// {owner, admin, maintainer}.
var policy = map[Operation]Rule{
	OpReservationEdit:     {Owner: true, Privileges: []constants.Privilege{constants.PrivilegeAdmin}},
	OpReservationDelete:   {Owner: true, Privileges: []constants.Privilege{constants.PrivilegeAdmin}},
	OpReservationComplete: {Owner: true, Privileges: []constants.Privilege{constants.PrivilegeAdmin, constants.PrivilegeMaintainer}},
	OpIssueStatus:         {Privileges: []constants.Privilege{constants.PrivilegeAdmin, constants.PrivilegeMaintainer}},
	OpIssueDelete:         {Privileges: []constants.Privilege{constants.PrivilegeAdmin, constants.PrivilegeMaintainer}},
	OpAircraftManage:      {Privileges: []constants.Privilege{constants.PrivilegeAdmin}},
	OpUserManage:          {Privileges: []constants.Privilege{constants.PrivilegeAdmin}},
	OpUsageReport:         {Privileges: []constants.Privilege{constants.PrivilegeAdmin, constants.PrivilegeMaintainer}},
}

// Can reports whether claims may perform op on a resource owned by ownerID.
// Pass 0 for ownerID when the operation has no owner concept.
func Can(claims UserClaims, op Operation, ownerID int64) bool {
	if claims == nil {
		return false
	}

	rule, ok := policy[op]
	if !ok {
		return false
	}

	if rule.Owner && ownerID != 0 && claims.UserID() == ownerID {
		return true
	}

	for _, p := range rule.Privileges {
		if claims.Privilege() == p {
			return true
		}
	}
	return false
}
